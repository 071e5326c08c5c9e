package seed

import "github.com/mixmini/mixmini/internal/models"

// swatch is one paint within a brand/range block.
type swatch struct {
	name string
	hex  string
}

func expand(brand, rng, paintType string, swatches []swatch) []models.Paint {
	paints := make([]models.Paint, 0, len(swatches))
	for _, s := range swatches {
		paints = append(paints, models.Paint{
			Brand:     brand,
			Range:     rng,
			Name:      s.name,
			Hex:       s.hex,
			PaintType: paintType,
		})
	}
	return paints
}

// Catalog returns the full seed set, freshly built so callers can hand
// the slices to GORM without aliasing package state.
func Catalog() []models.Paint {
	var paints []models.Paint
	paints = append(paints, expand("Citadel", "Base", "base", citadelBase)...)
	paints = append(paints, expand("Citadel", "Layer", "layer", citadelLayer)...)
	paints = append(paints, expand("Citadel", "Shade", "shade", citadelShade)...)
	paints = append(paints, expand("Citadel", "Contrast", "contrast", citadelContrast)...)
	paints = append(paints, expand("Citadel", "Technical", "technical", citadelTechnical)...)
	paints = append(paints, expand("Citadel", "Dry", "dry", citadelDry)...)
	paints = append(paints, expand("Vallejo", "Model Color", "acrylic", vallejoModelColor)...)
	paints = append(paints, expand("Vallejo", "Game Color", "acrylic", vallejoGameColor)...)
	paints = append(paints, expand("The Army Painter", "Warpaints", "acrylic", armyPainterWarpaints)...)
	paints = append(paints, expand("The Army Painter", "Warpaints", "wash", armyPainterWashes)...)
	paints = append(paints, expand("Scale75", "Scalecolor", "acrylic", scalecolor)...)
	paints = append(paints, expand("Scale75", "Metal n' Alchemy", "metallic", scaleMetal)...)
	return paints
}

var citadelBase = []swatch{
	{"Abaddon Black", "#1D1D20"},
	{"Averland Sunset", "#FBB81C"},
	{"Balthasar Gold", "#A47552"},
	{"Barak-Nar Burgundy", "#5A2A45"},
	{"Bugman's Glow", "#834F44"},
	{"Caledor Sky", "#366699"},
	{"Caliban Green", "#00401A"},
	{"Castellan Green", "#224D20"},
	{"Catachan Fleshtone", "#55413B"},
	{"Celestra Grey", "#90A7A1"},
	{"Ceramite White", "#FFFFFF"},
	{"Corax White", "#F4F4F4"},
	{"Corvus Black", "#171314"},
	{"Daemonette Hide", "#696684"},
	{"Death Guard Green", "#6A7038"},
	{"Death Korps Drab", "#44494B"},
	{"Deathworld Forest", "#5B6430"},
	{"Dryad Bark", "#33312E"},
	{"Gal Vorbak Red", "#53293B"},
	{"Grey Knights Steel", "#8A9394"},
	{"Incubi Darkness", "#082E31"},
	{"Ionrach Skin", "#90A596"},
	{"Jokaero Orange", "#EE3823"},
	{"Kantor Blue", "#02134E"},
	{"Khorne Red", "#6A0002"},
	{"Leadbelcher", "#888D8F"},
	{"Lupercal Green", "#05343E"},
	{"Macragge Blue", "#0F3D7C"},
	{"Mechanicus Standard Grey", "#3D4B4D"},
	{"Mephiston Red", "#9A1115"},
	{"Morghast Bone", "#C3B79E"},
	{"Mournfang Brown", "#640909"},
	{"Naggaroth Night", "#3D3354"},
	{"Night Lords Blue", "#13264D"},
	{"Nocturne Green", "#17281E"},
	{"Orruk Flesh", "#87AB63"},
	{"Phoenician Purple", "#440052"},
	{"Rakarth Flesh", "#A29E94"},
	{"Ratskin Flesh", "#A65C33"},
	{"Retributor Armour", "#C39E81"},
	{"Rhinox Hide", "#493435"},
	{"Screamer Pink", "#7D1645"},
	{"Steel Legion Drab", "#5E5440"},
	{"Stegadon Scale Green", "#05456E"},
	{"The Fang", "#436174"},
	{"Thousand Sons Blue", "#00506F"},
	{"Thunderhawk Blue", "#32586A"},
	{"Waaagh! Flesh", "#1F5736"},
	{"Wraithbone", "#D9CDB9"},
	{"XV-88", "#72491E"},
	{"Zandri Dust", "#9E915C"},
}

var citadelLayer = []swatch{
	{"Administratum Grey", "#949B95"},
	{"Alaitoc Blue", "#4C6E94"},
	{"Altdorf Guard Blue", "#1F56A7"},
	{"Auric Armour Gold", "#E5B876"},
	{"Baharroth Blue", "#57C1C9"},
	{"Baneblade Brown", "#7D6A51"},
	{"Bestigor Flesh", "#D48A54"},
	{"Bloodreaver Flesh", "#6A4948"},
	{"Blue Horror", "#90AFD5"},
	{"Bubonic Brown", "#9F7D3C"},
	{"Cadian Fleshtone", "#C77958"},
	{"Calgar Blue", "#2A4E94"},
	{"Dawnstone", "#70756C"},
	{"Dechala Lilac", "#B8A0D0"},
	{"Deepkin Flesh", "#A6AF90"},
	{"Dorn Yellow", "#FFF35C"},
	{"Elysian Green", "#78872C"},
	{"Emperor's Children", "#B74073"},
	{"Eshin Grey", "#4A4B4F"},
	{"Evil Sunz Scarlet", "#C21C1C"},
	{"Fenrisian Grey", "#719BB7"},
	{"Fire Dragon Bright", "#F4874E"},
	{"Fireslayer Flesh", "#BA6E55"},
	{"Flash Gitz Yellow", "#FFF200"},
	{"Flayed One Flesh", "#EBC9A0"},
	{"Fulgurite Copper", "#B77C54"},
	{"Gauss Blaster Green", "#7FC9AE"},
	{"Genestealer Purple", "#7861A5"},
	{"Hoeth Blue", "#4C78AF"},
	{"Ironbreaker", "#9FA2A5"},
	{"Kabalite Green", "#008763"},
	{"Kakophoni Purple", "#886CB0"},
	{"Karak Stone", "#BB9662"},
	{"Kislev Flesh", "#D6A875"},
	{"Krieg Khaki", "#B1AE7C"},
	{"Liberator Gold", "#E7B64E"},
	{"Loren Forest", "#496D1F"},
	{"Lothern Blue", "#32A9D3"},
	{"Moot Green", "#50B843"},
	{"Nurgling Green", "#8DA05E"},
	{"Ogryn Camo", "#9DA84B"},
	{"Pallid Wych Flesh", "#CDCEBE"},
	{"Phalanx Yellow", "#FFD71C"},
	{"Pink Horror", "#95375E"},
	{"Runefang Steel", "#C3C8CB"},
	{"Russ Grey", "#47617B"},
	{"Screaming Skull", "#C5C29A"},
	{"Skarsnik Green", "#5E9370"},
	{"Skavenblight Dinge", "#46423D"},
	{"Skrag Brown", "#8F4B19"},
	{"Sons of Horus Green", "#2A7567"},
	{"Sotek Green", "#0B6573"},
	{"Squig Orange", "#A74A41"},
	{"Stormhost Silver", "#BFC8CE"},
	{"Straken Green", "#587733"},
	{"Sybarite Green", "#16A863"},
	{"Sycorax Bronze", "#A58A63"},
	{"Tallarn Sand", "#A07409"},
	{"Tau Light Ochre", "#BE6C0B"},
	{"Temple Guard Blue", "#239489"},
	{"Troll Slayer Orange", "#F36D21"},
	{"Tuskgor Fur", "#713836"},
	{"Ulthuan Grey", "#C5E1DD"},
	{"Ungor Flesh", "#D1A570"},
	{"Ushabti Bone", "#BBA97B"},
	{"Warboss Green", "#317E4F"},
	{"Warpfiend Grey", "#6B6A74"},
	{"Warpstone Glow", "#13782D"},
	{"White Scar", "#FFFFFF"},
	{"Wild Rider Red", "#E8442B"},
	{"Xereus Purple", "#46216C"},
	{"Yriel Yellow", "#FFDA00"},
	{"Zamesi Desert", "#DA9F17"},
}

var citadelShade = []swatch{
	{"Agrax Earthshade", "#5A573E"},
	{"Athonian Camoshade", "#4C533A"},
	{"Berserker Bloodshade", "#A03332"},
	{"Biel-Tan Green", "#1B7B47"},
	{"Carroburg Crimson", "#913A62"},
	{"Casandora Yellow", "#F2B741"},
	{"Coelia Greenshade", "#1A5C57"},
	{"Cryptek Armourshade", "#5D564C"},
	{"Drakenhof Nightshade", "#23395B"},
	{"Druchii Violet", "#6A4E7F"},
	{"Fuegan Orange", "#B1541C"},
	{"Kroak Green", "#4B8178"},
	{"Mortarion Grime", "#68705C"},
	{"Nuln Oil", "#14100E"},
	{"Poxwalker Green", "#8B9861"},
	{"Reikland Fleshshade", "#A06C4C"},
	{"Seraphim Sepia", "#AC7C21"},
	{"Soulblight Grey", "#6E7367"},
	{"Targor Rageshade", "#4C4257"},
	{"Tyran Blue", "#28547D"},
}

var citadelContrast = []swatch{
	{"Aethermatic Blue", "#39A8B8"},
	{"Aggaros Dunes", "#A08A49"},
	{"Akhelian Green", "#186C77"},
	{"Apothecary White", "#A6B6B3"},
	{"Basilicanum Grey", "#4A4A4A"},
	{"Black Legion", "#1F1F23"},
	{"Black Templar", "#101014"},
	{"Blood Angels Red", "#A6121E"},
	{"Briar Queen Chill", "#6C8893"},
	{"Creed Camo", "#3E5B31"},
	{"Cygor Brown", "#51362C"},
	{"Dark Angels Green", "#10382B"},
	{"Darkoath Flesh", "#A4674E"},
	{"Doomfire Magenta", "#A3286A"},
	{"Flesh Tearers Red", "#791318"},
	{"Frostheart", "#7BB1CB"},
	{"Fyreslayer Flesh", "#B06050"},
	{"Garaghak's Sewer", "#5E6633"},
	{"Gore-Grunta Fur", "#793F24"},
	{"Gryph-Charger Grey", "#607B8A"},
	{"Gryph-Hound Orange", "#C74E1C"},
	{"Guilliman Flesh", "#B2765B"},
	{"Iyanden Yellow", "#E8A400"},
	{"Leviadon Blue", "#0C3A66"},
	{"Magos Purple", "#7E3C74"},
	{"Militarum Green", "#6B6F3A"},
	{"Nazdreg Yellow", "#CDA22A"},
	{"Nighthaunt Gloom", "#3C6E84"},
	{"Ork Flesh", "#3E7C43"},
	{"Plaguebearer Flesh", "#8E9C64"},
	{"Shyish Purple", "#55275E"},
	{"Skeleton Horde", "#B09E6E"},
	{"Snakebite Leather", "#8F5A1F"},
	{"Space Wolves Grey", "#6D8A99"},
	{"Talassar Blue", "#1C5BA6"},
	{"Terradon Turquoise", "#1E6E73"},
	{"Ultramarines Blue", "#133A80"},
	{"Volupus Pink", "#8C1D5B"},
	{"Warp Lightning", "#3B8C3E"},
	{"Wyldwood", "#46302A"},
}

var citadelTechnical = []swatch{
	{"Ardcoat", "#E9E9E9"},
	{"Agrellan Earth", "#9C8860"},
	{"Astrogranite", "#6E7173"},
	{"Blood for the Blood God", "#7A0104"},
	{"Contrast Medium", "#E8E8E4"},
	{"Lahmian Medium", "#EDEDEB"},
	{"Martian Ironearth", "#83402A"},
	{"Nihilakh Oxide", "#79C4B5"},
	{"Nurgle's Rot", "#7D8711"},
	{"Stirland Mud", "#42392B"},
	{"Typhus Corrosion", "#47413A"},
	{"Valhallan Blizzard", "#F1F2F0"},
}

var citadelDry = []swatch{
	{"Astorath Red", "#B4482D"},
	{"Changeling Pink", "#DBA8CC"},
	{"Chronus Blue", "#5581B5"},
	{"Eldar Flesh", "#DEC29B"},
	{"Etherium Blue", "#A2BAC6"},
	{"Golgfag Brown", "#AA6B52"},
	{"Hellion Green", "#98D5C2"},
	{"Imrik Blue", "#6DA5C0"},
	{"Kindleflame", "#E8926D"},
	{"Longbeard Grey", "#CBCCC4"},
	{"Necron Compound", "#AEB4B9"},
	{"Niblet Green", "#6FA558"},
	{"Praxeti White", "#F6F6F2"},
	{"Ryza Rust", "#C05A21"},
	{"Sigmarite", "#D6B570"},
	{"Skink Blue", "#66C2C8"},
	{"Terminatus Stone", "#BDAE90"},
	{"Tyrant Skull", "#C6BC94"},
	{"Underhive Ash", "#B3B08A"},
	{"Wrack White", "#E7E3DC"},
}

var vallejoModelColor = []swatch{
	{"Black", "#0F0F10"},
	{"White", "#FAFAFA"},
	{"Ivory", "#F2EBD5"},
	{"Offwhite", "#ECE7DA"},
	{"Flat Red", "#A51E22"},
	{"Flat Yellow", "#F6C342"},
	{"Flat Green", "#3E6B3C"},
	{"Flat Blue", "#24456E"},
	{"Flat Brown", "#664133"},
	{"Flat Earth", "#7A5338"},
	{"Flat Flesh", "#D9A06B"},
	{"Basic Skintone", "#E2A679"},
	{"Sunny Skintone", "#E6AD7E"},
	{"Dark Flesh", "#B06E4B"},
	{"Burnt Umber", "#4A3526"},
	{"Saddle Brown", "#6F4A2F"},
	{"Beige Brown", "#74553A"},
	{"Chocolate Brown", "#553B2B"},
	{"Mahogany Brown", "#5E342A"},
	{"Red Leather", "#8C4332"},
	{"Orange Brown", "#C46F36"},
	{"Light Brown", "#B4764A"},
	{"Cork Brown", "#C09158"},
	{"Tan Earth", "#AE8A5E"},
	{"Desert Yellow", "#AD9159"},
	{"Green Ochre", "#9C8144"},
	{"Yellow Ochre", "#C99A3E"},
	{"Dark Sand", "#C8B484"},
	{"Buff", "#D9C99E"},
	{"Iraqi Sand", "#CDB98C"},
	{"Pale Sand", "#E0D6B8"},
	{"Deck Tan", "#C9C4B2"},
	{"Stone Grey", "#A8A693"},
	{"Green Grey", "#8B9180"},
	{"Grey Green", "#6F7465"},
	{"London Grey", "#6E7271"},
	{"Neutral Grey", "#7A7D7C"},
	{"Basalt Grey", "#5C6163"},
	{"Dark Sea Grey", "#4E5758"},
	{"German Grey", "#3A3E41"},
	{"Dark Grey", "#454849"},
	{"Sky Grey", "#C2C8C6"},
	{"Silver Grey", "#D4D9D6"},
	{"Pale Grey Blue", "#AFC0CC"},
	{"Deep Sky Blue", "#2E8BC6"},
	{"Sky Blue", "#4FA3D1"},
	{"Azure", "#2A6FB0"},
	{"Medium Blue", "#2B5E9B"},
	{"Ultramarine", "#1F3C87"},
	{"Dark Prussian Blue", "#16263F"},
	{"Prussian Blue", "#1C3250"},
	{"Night Blue", "#17203A"},
	{"Dark Blue", "#1B2F5E"},
	{"Turquoise", "#1D7F84"},
	{"Light Turquoise", "#4FA8A4"},
	{"Emerald", "#2E8A5A"},
	{"Park Green Flat", "#3B7A3F"},
	{"Intermediate Green", "#5C8F46"},
	{"Light Green", "#79A84F"},
	{"Lime Green", "#9CBF4E"},
	{"Olive Green", "#545F35"},
	{"Luftwaffe Camo Green", "#2F4636"},
	{"Russian Green", "#55694C"},
	{"Military Green", "#4C5A3C"},
	{"Reflective Green", "#3A5A40"},
	{"Dark Green", "#2B4A33"},
	{"Black Green", "#1E2B24"},
	{"Yellow Green", "#AEBB56"},
	{"Deep Yellow", "#F4B400"},
	{"Lemon Yellow", "#F7E04B"},
	{"Light Yellow", "#F6E8A0"},
	{"Ice Yellow", "#F3ECC0"},
	{"Orange Fire", "#E55C24"},
	{"Light Orange", "#EE8A2A"},
	{"Scarlet", "#B01E24"},
	{"Vermillion", "#C53A28"},
	{"Carmine Red", "#931C28"},
	{"Cavalry Brown", "#7E3B2D"},
	{"Hull Red", "#54261F"},
	{"Purple", "#5B2E63"},
	{"Royal Purple", "#49306E"},
	{"Violet", "#3F2D66"},
	{"Blue Violet", "#33407A"},
	{"Pink", "#DE8FA8"},
	{"Magenta", "#A5305F"},
	{"Sunset Red", "#C14B33"},
	{"Old Rose", "#B66A6E"},
	{"Silver", "#B7BCBE"},
	{"Gold", "#AE8A3C"},
	{"Bronze", "#8C6234"},
	{"Copper", "#8F5A3A"},
	{"Gunmetal Grey", "#4E555B"},
	{"Oily Steel", "#6E7478"},
	{"Natural Steel", "#8F9598"},
}

var vallejoGameColor = []swatch{
	{"Dead White", "#F5F3EE"},
	{"Wolf Grey", "#9FB3C4"},
	{"Cold Grey", "#727A80"},
	{"Sombre Grey", "#525A68"},
	{"Stonewall Grey", "#9FA4A3"},
	{"Bloody Red", "#A61E22"},
	{"Gory Red", "#8C1A24"},
	{"Hot Orange", "#E0592B"},
	{"Sun Yellow", "#F7C52E"},
	{"Gold Yellow", "#EBA92B"},
	{"Plague Brown", "#A78A35"},
	{"Leather Brown", "#7C5226"},
	{"Beasty Brown", "#69432A"},
	{"Bronze Fleshtone", "#C2805C"},
	{"Dwarf Skin", "#CC8460"},
	{"Elf Skintone", "#DFAE85"},
	{"Pale Flesh", "#E7C39E"},
	{"Rosy Flesh", "#D99B7E"},
	{"Dark Fleshtone", "#7A4636"},
	{"Khaki", "#9C9069"},
	{"Earth", "#8A6A42"},
	{"Charred Brown", "#46332A"},
	{"Scrofulous Brown", "#B98A47"},
	{"Filthy Brown", "#C79A3C"},
	{"Sick Green", "#5E8A4A"},
	{"Goblin Green", "#5F9E54"},
	{"Camouflage Green", "#56633C"},
	{"Cayman Green", "#3D5B46"},
	{"Dark Green", "#1F4A36"},
	{"Jade Green", "#2E8C68"},
	{"Foul Green", "#4DA08A"},
	{"Scurvy Green", "#176E76"},
	{"Falcon Turquoise", "#1C8A96"},
	{"Electric Blue", "#3C9AD1"},
	{"Magic Blue", "#1F63B0"},
	{"Ultramarine Blue", "#263C8C"},
	{"Imperial Blue", "#1D2C63"},
	{"Night Blue", "#1A2344"},
	{"Stormy Blue", "#33506E"},
	{"Hexed Lichen", "#5A3C6E"},
	{"Warlord Purple", "#8C2E63"},
	{"Squid Pink", "#D9738F"},
	{"Dead Flesh", "#9FB278"},
	{"Bonewhite", "#CFBE93"},
}

var armyPainterWarpaints = []swatch{
	{"Matt Black", "#151617"},
	{"Matt White", "#F8F8F6"},
	{"Pure Red", "#A8211F"},
	{"Dragon Red", "#8E1B1E"},
	{"Lava Orange", "#D9512A"},
	{"Daemonic Yellow", "#F5C216"},
	{"Moon Dust", "#E8D27A"},
	{"Greenskin", "#3F7A3B"},
	{"Goblin Green", "#5E9C52"},
	{"Army Green", "#59633E"},
	{"Angel Green", "#22402A"},
	{"Necrotic Flesh", "#AEB98A"},
	{"Barbarian Flesh", "#D09572"},
	{"Tanned Flesh", "#BC7752"},
	{"Fur Brown", "#8E5230"},
	{"Leather Brown", "#6E4A2A"},
	{"Oak Brown", "#503524"},
	{"Desert Yellow", "#B39450"},
	{"Skeleton Bone", "#CFC08E"},
	{"Wolf Grey", "#8EA4B8"},
	{"Ash Grey", "#9AA0A0"},
	{"Uniform Grey", "#66707A"},
	{"Castle Grey", "#7E8282"},
	{"Ultramarine Blue", "#20408C"},
	{"Crystal Blue", "#3F7CC2"},
	{"Electric Blue", "#5FA8D6"},
	{"Deep Blue", "#1A2C5E"},
	{"Hydra Turquoise", "#18808A"},
	{"Voidshield Blue", "#2C5E92"},
	{"Alien Purple", "#5E2C72"},
	{"Wizards Orb", "#2A7A62"},
	{"Corpse Pale", "#C8BFA4"},
	{"Werewolf Fur", "#7E5538"},
	{"Mummy Robes", "#D9CCA6"},
	{"Shining Silver", "#B9BEC2"},
	{"Plate Mail Metal", "#8E9498"},
	{"Gun Metal", "#5E6468"},
	{"Weapon Bronze", "#9C7236"},
	{"Greedy Gold", "#A8822E"},
	{"Bright Gold", "#C2992E"},
	{"True Copper", "#93603A"},
}

var armyPainterWashes = []swatch{
	{"Dark Tone", "#1C1A18"},
	{"Strong Tone", "#54422C"},
	{"Soft Tone", "#8A6A3E"},
	{"Light Tone", "#AE915C"},
	{"Green Tone", "#3C5A38"},
	{"Blue Tone", "#243C6E"},
	{"Purple Tone", "#4C2C5E"},
	{"Red Tone", "#6E2020"},
	{"Flesh Wash", "#8A4E34"},
}

var scalecolor = []swatch{
	{"Flat Black", "#121212"},
	{"Pure Black", "#060606"},
	{"White Sands", "#EFE8D8"},
	{"Pure White", "#FCFCFC"},
	{"Sunflower Yellow", "#F2B71E"},
	{"Mars Orange", "#C65A28"},
	{"Antares Red", "#AA2024"},
	{"Blood Red", "#8C1A20"},
	{"Deep Red", "#6E1418"},
	{"Aldebaran Red", "#C23A2E"},
	{"Mediterranean Blue", "#2270B2"},
	{"Navy Blue", "#1C2C52"},
	{"Deep Blue", "#16233E"},
	{"Bering Blue", "#6E94A8"},
	{"Caribbean Blue", "#2E9AB8"},
	{"Mojave White", "#DCD2B6"},
	{"Birch", "#C8B288"},
	{"Iroko", "#A87E4A"},
	{"Mahogany", "#6E3A26"},
	{"Walnut", "#4A3020"},
	{"Brown Leather", "#8A5A32"},
	{"Sahara Yellow", "#D2A450"},
	{"Eclipse Grey", "#3A4046"},
	{"Graphite Grey", "#565C62"},
	{"Artic Blue", "#A4C4D2"},
	{"Forest Green", "#2C5236"},
	{"Jungle Green", "#3E7A4A"},
	{"Irati Green", "#1E3C2A"},
	{"Boreal Tree Green", "#4C6E3C"},
	{"Violet Ink", "#3E2458"},
}

var scaleMetal = []swatch{
	{"Black Metal", "#26282C"},
	{"Heavy Metal", "#4E545A"},
	{"Thrash Metal", "#6E767E"},
	{"Speed Metal", "#9EA6AE"},
	{"Victorian Brass", "#8E6E3A"},
	{"Dwarven Gold", "#A8842E"},
	{"Elven Gold", "#C2A24A"},
	{"Necro Gold", "#86683A"},
	{"Copper", "#8E5A36"},
	{"Old Copper", "#6E4630"},
}
