package lookup

// platformEntries is the IGDB platform table.
var platformEntries = []Entry{
	{3, "Linux"},
	{4, "Nintendo 64"},
	{5, "Wii"},
	{6, "PC (Microsoft Windows)"},
	{7, "PlayStation"},
	{8, "PlayStation 2"},
	{9, "PlayStation 3"},
	{11, "Xbox"},
	{12, "Xbox 360"},
	{13, "DOS"},
	{14, "Mac"},
	{15, "Commodore C64/128/MAX"},
	{16, "Amiga"},
	{18, "Nintendo Entertainment System"},
	{19, "Super Nintendo Entertainment System"},
	{20, "Nintendo DS"},
	{21, "Nintendo GameCube"},
	{22, "Game Boy Color"},
	{23, "Dreamcast"},
	{24, "Game Boy Advance"},
	{25, "Amstrad CPC"},
	{26, "ZX Spectrum"},
	{27, "MSX"},
	{29, "Sega Mega Drive/Genesis"},
	{30, "Sega 32X"},
	{32, "Sega Saturn"},
	{33, "Game Boy"},
	{34, "Android"},
	{35, "Sega Game Gear"},
	{37, "Nintendo 3DS"},
	{38, "PlayStation Portable"},
	{39, "iOS"},
	{41, "Wii U"},
	{42, "N-Gage"},
	{44, "Tapwave Zodiac"},
	{46, "PlayStation Vita"},
	{47, "Virtual Console"},
	{48, "PlayStation 4"},
	{49, "Xbox One"},
	{50, "3DO Interactive Multiplayer"},
	{51, "Family Computer Disk System"},
	{52, "Arcade"},
	{53, "MSX2"},
	{55, "Legacy Mobile Device"},
	{57, "WonderSwan"},
	{58, "Super Famicom"},
	{59, "Atari 2600"},
	{60, "Atari 7800"},
	{61, "Atari Lynx"},
	{62, "Atari Jaguar"},
	{63, "Atari ST/STE"},
	{64, "Sega Master System/Mark III"},
	{65, "Atari 8-bit"},
	{66, "Atari 5200"},
	{67, "Intellivision"},
	{68, "ColecoVision"},
	{69, "BBC Microcomputer System"},
	{70, "Vectrex"},
	{71, "Commodore VIC-20"},
	{72, "Ouya"},
	{73, "BlackBerry OS"},
	{74, "Windows Phone"},
	{75, "Apple II"},
	{77, "Sharp X1"},
	{78, "Sega CD"},
	{79, "Neo Geo MVS"},
	{80, "Neo Geo AES"},
	{82, "Web browser"},
	{84, "SG-1000"},
	{85, "Donner Model 30"},
	{86, "TurboGrafx-16/PC Engine"},
	{87, "Virtual Boy"},
	{88, "Odyssey"},
	{89, "Microvision"},
	{90, "Commodore PET"},
	{91, "Bally Astrocade"},
	{93, "Commodore 16"},
	{94, "Commodore Plus/4"},
	{95, "PDP-1"},
	{96, "PDP-10"},
	{97, "PDP-8"},
	{98, "DEC GT40"},
	{99, "Family Computer"},
	{100, "Analogue electronics"},
	{101, "Ferranti Nimrod Computer"},
	{102, "EDSAC"},
	{103, "PDP-7"},
	{104, "HP 2100"},
	{105, "HP 3000"},
	{106, "SDS Sigma 7"},
	{107, "Call-A-Computer time-shared mainframe computer system"},
	{108, "PDP-11"},
	{109, "CDC Cyber 70"},
	{110, "PLATO"},
	{111, "Imlac PDS-1"},
	{112, "Microcomputer"},
	{113, "OnLive Game System"},
	{114, "Amiga CD32"},
	{115, "Apple IIGS"},
	{116, "Acorn Archimedes"},
	{117, "Philips CD-i"},
	{118, "FM Towns"},
	{119, "Neo Geo Pocket"},
	{120, "Neo Geo Pocket Color"},
	{121, "Sharp X68000"},
	{122, "Nuon"},
	{123, "WonderSwan Color"},
	{124, "SwanCrystal"},
	{125, "PC-8801"},
	{126, "TRS-80"},
	{127, "Fairchild Channel F"},
	{128, "PC Engine SuperGrafx"},
	{129, "Texas Instruments TI-99"},
	{130, "Nintendo Switch"},
	{131, "Nintendo PlayStation"},
	{132, "Amazon Fire TV"},
	{133, "Odyssey 2 / Videopac G7000"},
	{134, "Acorn Electron"},
	{135, "Hyper Neo Geo 64"},
	{136, "Neo Geo CD"},
	{137, "New Nintendo 3DS"},
	{138, "VC 4000"},
	{139, "1292 Advanced Programmable Video System"},
	{140, "AY-3-8500"},
	{141, "AY-3-8610"},
	{142, "PC-50X Family"},
	{143, "AY-3-8760"},
	{144, "AY-3-8710"},
	{145, "AY-3-8603"},
	{146, "AY-3-8605"},
	{147, "AY-3-8606"},
	{148, "AY-3-8607"},
	{149, "PC-98"},
	{150, "Turbografx-16/PC Engine CD"},
	{151, "TRS-80 Color Computer"},
	{152, "FM-7"},
	{153, "Dragon 32/64"},
	{154, "Amstrad PCW"},
	{155, "Tatung Einstein"},
	{156, "Thomson MO5"},
	{157, "NEC PC-6000 Series"},
	{158, "Commodore CDTV"},
	{159, "Nintendo DSi"},
	{161, "Windows Mixed Reality"},
	{162, "Oculus VR"},
	{163, "SteamVR"},
	{164, "Daydream"},
	{165, "PlayStation VR"},
	{166, "Pokémon mini"},
	{167, "PlayStation 5"},
	{169, "Xbox Series X|S"},
	{170, "Google Stadia"},
	{203, "DUPLICATE Stadia"},
	{236, "Exidy Sorcerer"},
	{237, "Sol-20"},
	{238, "DVD Player"},
	{239, "Blu-ray Player"},
	{240, "Zeebo"},
	{274, "PC-FX"},
	{306, "Satellaview"},
	{307, "Game & Watch"},
	{308, "Playdia"},
	{309, "Evercade"},
	{339, "Sega Pico"},
	{372, "OOParts"},
	{373, "Sinclair ZX81"},
	{374, "Sharp MZ-2200"},
	{375, "Epoch Cassette Vision"},
	{376, "Epoch Super Cassette Vision"},
	{377, "Plug & Play"},
	{378, "Gamate"},
	{379, "Game.com"},
	{380, "Casio Loopy"},
	{381, "Playdate"},
	{382, "Intellivision Amico"},
	{384, "Oculus Quest"},
	{385, "Oculus Rift"},
	{386, "Meta Quest 2"},
	{387, "Oculus Go"},
	{388, "Gear VR"},
	{389, "AirConsole"},
	{390, "PlayStation VR2"},
	{405, "Windows Mobile"},
	{406, "Sinclair QL"},
	{407, "HyperScan"},
	{408, "Mega Duck/Cougar Boy"},
	{409, "Legacy Computer"},
	{410, "Atari Jaguar CD"},
	{411, "Handheld Electronic LCD"},
	{412, "Leapster"},
	{413, "Leapster Explorer/LeadPad Explorer"},
	{414, "LeapTV"},
	{415, "Watara/QuickShot Supervision"},
	{416, "Nintendo 64DD"},
	{417, "Palm OS"},
	{438, "Arduboy"},
	{439, "V.Smile"},
	{440, "Visual Memory Unit / Visual Memory System"},
	{441, "PocketStation"},
}
