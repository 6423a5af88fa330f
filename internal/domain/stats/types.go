package stats

// Upstream column names. JSON keys for both record shapes use them verbatim so
// serialized stats read the same way the statistics source reports them.
const (
	FieldSeasonID         = "SEASON_ID"
	FieldTeamAbbreviation = "TEAM_ABBREVIATION"
	FieldGP               = "GP"
	FieldGS               = "GS"
	FieldMIN              = "MIN"
	FieldFGM              = "FGM"
	FieldFGA              = "FGA"
	FieldFGPct            = "FG_PCT"
	FieldFG3M             = "FG3M"
	FieldFG3A             = "FG3A"
	FieldFG3Pct           = "FG3_PCT"
	FieldFTM              = "FTM"
	FieldFTA              = "FTA"
	FieldFTPct            = "FT_PCT"
	FieldREB              = "REB"
	FieldAST              = "AST"
	FieldSTL              = "STL"
	FieldBLK              = "BLK"
	FieldTOV              = "TOV"
	FieldPTS              = "PTS"
)

// RequiredFields lists every column a raw season record must carry.
var RequiredFields = []string{
	FieldSeasonID, FieldTeamAbbreviation,
	FieldGP, FieldGS, FieldMIN,
	FieldFGM, FieldFGA, FieldFGPct,
	FieldFG3M, FieldFG3A, FieldFG3Pct,
	FieldFTM, FieldFTA, FieldFTPct,
	FieldREB, FieldAST, FieldSTL, FieldBLK, FieldTOV, FieldPTS,
}

// TotalTeamAbbreviation marks the upstream row that combines every team a
// player appeared for during a traded season.
const TotalTeamAbbreviation = "TOT"

// RawSeasonRecord holds cumulative season totals exactly as supplied upstream.
type RawSeasonRecord struct {
	SeasonID         string  `json:"SEASON_ID"`
	TeamAbbreviation string  `json:"TEAM_ABBREVIATION"`
	GP               int     `json:"GP"`
	GS               int     `json:"GS"`
	MIN              float64 `json:"MIN"`
	FGM              float64 `json:"FGM"`
	FGA              float64 `json:"FGA"`
	FGPct            float64 `json:"FG_PCT"`
	FG3M             float64 `json:"FG3M"`
	FG3A             float64 `json:"FG3A"`
	FG3Pct           float64 `json:"FG3_PCT"`
	FTM              float64 `json:"FTM"`
	FTA              float64 `json:"FTA"`
	FTPct            float64 `json:"FT_PCT"`
	REB              float64 `json:"REB"`
	AST              float64 `json:"AST"`
	STL              float64 `json:"STL"`
	BLK              float64 `json:"BLK"`
	TOV              float64 `json:"TOV"`
	PTS              float64 `json:"PTS"`
}

// NormalizedStats mirrors RawSeasonRecord with MIN, PTS, REB, AST, STL and BLK
// expressed per game. GP and GS stay counts; percentages pass through.
type NormalizedStats struct {
	SeasonID         string  `json:"SEASON_ID"`
	TeamAbbreviation string  `json:"TEAM_ABBREVIATION"`
	GP               int     `json:"GP"`
	GS               int     `json:"GS"`
	MIN              float64 `json:"MIN"`
	FGM              float64 `json:"FGM"`
	FGA              float64 `json:"FGA"`
	FGPct            float64 `json:"FG_PCT"`
	FG3M             float64 `json:"FG3M"`
	FG3A             float64 `json:"FG3A"`
	FG3Pct           float64 `json:"FG3_PCT"`
	FTM              float64 `json:"FTM"`
	FTA              float64 `json:"FTA"`
	FTPct            float64 `json:"FT_PCT"`
	REB              float64 `json:"REB"`
	AST              float64 `json:"AST"`
	STL              float64 `json:"STL"`
	BLK              float64 `json:"BLK"`
	TOV              float64 `json:"TOV"`
	PTS              float64 `json:"PTS"`
}
