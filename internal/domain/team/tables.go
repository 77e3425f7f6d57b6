package team

// Canonical lookup tables for the leagues the schedule sites cover.
// Keys are lowercased, whitespace-normalized page text; values are the
// slugs the stream endpoint is keyed by.

var nflFullNames = map[string]string{
	"arizona cardinals":     "arizonacardinals",
	"atlanta falcons":       "atlantafalcons",
	"baltimore ravens":      "baltimoreravens",
	"buffalo bills":         "buffalobills",
	"carolina panthers":     "carolinapanthers",
	"chicago bears":         "chicagobears",
	"cincinnati bengals":    "cincinnatibengals",
	"cleveland browns":      "clevelandbrowns",
	"dallas cowboys":        "dallascowboys",
	"denver broncos":        "denverbroncos",
	"detroit lions":         "detroitlions",
	"green bay packers":     "greenbaypackers",
	"houston texans":        "houstontexans",
	"indianapolis colts":    "indianapoliscolts",
	"jacksonville jaguars":  "jacksonvillejaguars",
	"kansas city chiefs":    "kansascitychiefs",
	"las vegas raiders":     "lasvegasraiders",
	"los angeles chargers":  "losangeleschargers",
	"los angeles rams":      "losangelesrams",
	"miami dolphins":        "miamidolphins",
	"minnesota vikings":     "minnesotavikings",
	"new england patriots":  "newenglandpatriots",
	"new orleans saints":    "neworleanssaints",
	"new york giants":       "newyorkgiants",
	"new york jets":         "newyorkjets",
	"philadelphia eagles":   "philadelphiaeagles",
	"pittsburgh steelers":   "pittsburghsteelers",
	"san francisco 49ers":   "sanfrancisco49ers",
	"seattle seahawks":      "seattleseahawks",
	"tampa bay buccaneers":  "tampabaybuccaneers",
	"tennessee titans":      "tennesseetitans",
	"washington commanders": "washingtoncommanders",
}

var nflNicknames = map[string]string{
	"cardinals": "arizonacardinals", "falcons": "atlantafalcons",
	"ravens": "baltimoreravens", "bills": "buffalobills",
	"panthers": "carolinapanthers", "bears": "chicagobears",
	"bengals": "cincinnatibengals", "browns": "clevelandbrowns",
	"cowboys": "dallascowboys", "broncos": "denverbroncos",
	"lions": "detroitlions", "packers": "greenbaypackers",
	"texans": "houstontexans", "colts": "indianapoliscolts",
	"jaguars": "jacksonvillejaguars", "chiefs": "kansascitychiefs",
	"raiders": "lasvegasraiders", "chargers": "losangeleschargers",
	"rams": "losangelesrams", "dolphins": "miamidolphins",
	"vikings": "minnesotavikings", "patriots": "newenglandpatriots",
	"saints": "neworleanssaints", "giants": "newyorkgiants",
	"jets": "newyorkjets", "eagles": "philadelphiaeagles",
	"steelers": "pittsburghsteelers", "49ers": "sanfrancisco49ers",
	"niners": "sanfrancisco49ers", "seahawks": "seattleseahawks",
	"buccaneers": "tampabaybuccaneers", "bucs": "tampabaybuccaneers",
	"titans": "tennesseetitans", "commanders": "washingtoncommanders",
}

var nhlFullNames = map[string]string{
	"anaheim ducks": "anaheimducks", "arizona coyotes": "arizonacoyotes",
	"boston bruins": "bostonbruins", "buffalo sabres": "buffalosabres",
	"calgary flames": "calgaryflames", "carolina hurricanes": "carolinahurricanes",
	"chicago blackhawks": "chicagoblackhawks", "colorado avalanche": "coloradoavalanche",
	"columbus blue jackets": "columbusbluejackets", "dallas stars": "dallasstars",
	"detroit red wings": "detroitredwings", "edmonton oilers": "edmontonoilers",
	"florida panthers": "floridapanthers", "los angeles kings": "losangeleskings",
	"minnesota wild": "minnesotawild", "montreal canadiens": "montrealcanadiens",
	"nashville predators": "nashvillepredators", "new jersey devils": "newjerseydevils",
	"new york islanders": "newyorkislanders", "new york rangers": "newyorkrangers",
	"ottawa senators": "ottawasenators", "philadelphia flyers": "philadelphiaflyers",
	"pittsburgh penguins": "pittsburghpenguins", "san jose sharks": "sanjosesharks",
	"seattle kraken": "seattlekraken", "st. louis blues": "stlouisblues",
	"tampa bay lightning": "tampabaylightning", "toronto maple leafs": "torontomapleleafs",
	"vancouver canucks": "vancouvercanucks", "vegas golden knights": "vegasgoldenknights",
	"washington capitals": "washingtoncapitals", "winnipeg jets": "winnipegjets",
}

var nhlNicknames = map[string]string{
	"ducks": "anaheimducks", "coyotes": "arizonacoyotes",
	"bruins": "bostonbruins", "sabres": "buffalosabres",
	"flames": "calgaryflames", "hurricanes": "carolinahurricanes",
	"blackhawks": "chicagoblackhawks", "avalanche": "coloradoavalanche",
	"bluejackets": "columbusbluejackets", "jackets": "columbusbluejackets",
	"stars": "dallasstars", "redwings": "detroitredwings", "wings": "detroitredwings",
	"oilers": "edmontonoilers", "panthers": "floridapanthers",
	"kings": "losangeleskings", "wild": "minnesotawild",
	"canadiens": "montrealcanadiens", "predators": "nashvillepredators",
	"devils": "newjerseydevils", "islanders": "newyorkislanders",
	"rangers": "newyorkrangers", "senators": "ottawasenators",
	"flyers": "philadelphiaflyers", "penguins": "pittsburghpenguins",
	"sharks": "sanjosesharks", "kraken": "seattlekraken",
	"blues": "stlouisblues", "lightning": "tampabaylightning",
	"mapleleafs": "torontomapleleafs", "leafs": "torontomapleleafs",
	"canucks": "vancouvercanucks", "goldenknights": "vegasgoldenknights",
	"knights": "vegasgoldenknights", "capitals": "washingtoncapitals",
	"caps": "washingtoncapitals", "jets": "winnipegjets",
}

// Nickname-to-code table for the league whose endpoint expects the
// composite nba_<code> form.
var nbaNicknameCodes = map[string]string{
	"hawks":        "atlantahawks",
	"celtics":      "bostonceltics",
	"nets":         "brooklynnets",
	"hornets":      "charlottehornets",
	"bulls":        "chicagobulls",
	"cavaliers":    "clevelandcavaliers",
	"mavericks":    "dallasmavericks",
	"nuggets":      "denvernuggets",
	"pistons":      "detroitpistons",
	"warriors":     "goldenstatewarriors",
	"rockets":      "houstonrockets",
	"pacers":       "indianapacers",
	"clippers":     "losangelesclippers",
	"lakers":       "losangeleslakers",
	"grizzlies":    "memphisgrizzlies",
	"heat":         "miamiheat",
	"bucks":        "milwaukeebucks",
	"timberwolves": "minnesotatimberwolves",
	"pelicans":     "neworleanspelicans",
	"knicks":       "newyorkknicks",
	"thunder":      "oklahomacitythunder",
	"magic":        "orlandomagic",
	"sixers":       "philadelphiasixers",
	"suns":         "phoenixsuns",
	"trailblazers": "portlandtrailblazers",
	"kings":        "sacramentokings",
	"spurs":        "sanantoniospurs",
	"raptors":      "torontoraptors",
	"jazz":         "utahjazz",
	"wizards":      "washingtonwizards",
}

// Nicknames that span two tokens on the page.
var twoWordNicknames = map[string]string{
	"red sox":       "redsox",
	"white sox":     "whitesox",
	"blue jays":     "bluejays",
	"trail blazers": "trailblazers",
}

// Free-standing spellings that map onto a canonical nickname. Ordered:
// candidate output must be stable across runs.
var nicknameAliases = []aliasRule{
	{"76ers", "sixers"},
	{"seventy sixers", "sixers"},
}

type aliasRule struct {
	spelling string
	nickname string
}
