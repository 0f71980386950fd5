package lookup

// UnknownAgeRating is the label for numeric ratings missing from the table.
const UnknownAgeRating = "Unknown"

// ageRatingEntries maps the numeric IGDB age_ratings.rating enum to a label.
var ageRatingEntries = []Entry{
	{1, "PEGI 3"},
	{2, "PEGI 7"},
	{3, "PEGI 12"},
	{4, "PEGI 16"},
	{5, "PEGI 18"},
	{6, "ESRB RP"},
	{7, "ESRB EC"},
	{8, "ESRB E"},
	{9, "ESRB E10+"},
	{10, "ESRB T"},
	{11, "ESRB M"},
	{12, "ESRB AO"},
	{13, "CERO A"},
	{14, "CERO B"},
	{15, "CERO C"},
	{16, "CERO D"},
	{17, "CERO Z"},
	{18, "USK 0"},
	{19, "USK 6"},
	{20, "USK 12"},
	{21, "USK 16"},
	{22, "USK 18"},
	{23, "GRAC All"},
	{24, "GRAC 12"},
	{25, "GRAC 15"},
	{26, "GRAC 18"},
	{27, "GRAC Testing"},
	{28, "ClassInd L"},
	{29, "ClassInd 10"},
	{30, "ClassInd 12"},
	{31, "ClassInd 14"},
	{32, "ClassInd 16"},
	{33, "ClassInd 18"},
	{34, "ACB G"},
	{35, "ACB PG"},
	{36, "ACB M"},
	{37, "ACB MA15+"},
	{38, "ACB R18+"},
	{39, "ACB RC"},
}
