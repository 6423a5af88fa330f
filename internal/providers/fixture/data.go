package fixture

import (
	"github.com/preston-bernstein/nba-stats-service/internal/domain/players"
	"github.com/preston-bernstein/nba-stats-service/internal/domain/stats"
)

const (
	StephenCurryID  = 201939
	LeBronJamesID   = 2544
	JamesHardenID   = 201935
	KlayThompsonID  = 202691
	MichaelJordanID = 893
)

func fixtureRoster() []players.Player {
	return []players.Player{
		{ID: StephenCurryID, FirstName: "Stephen", LastName: "Curry", IsActive: true},
		{ID: LeBronJamesID, FirstName: "LeBron", LastName: "James", IsActive: true},
		{ID: JamesHardenID, FirstName: "James", LastName: "Harden", IsActive: true},
		{ID: KlayThompsonID, FirstName: "Klay", LastName: "Thompson", IsActive: true},
		{ID: MichaelJordanID, FirstName: "Michael", LastName: "Jordan", IsActive: false},
	}
}

func fixtureCareers() map[int][]stats.RawSeasonRecord {
	return map[int][]stats.RawSeasonRecord{
		StephenCurryID: {
			{SeasonID: "2021-22", TeamAbbreviation: "GSW", GP: 64, GS: 64, MIN: 2211, FGM: 600, FGA: 1224, FGPct: 0.437, FG3M: 285, FG3A: 750, FG3Pct: 0.38, FTM: 281, FTA: 305, FTPct: 0.923, REB: 333, AST: 404, STL: 86, BLK: 28, TOV: 207, PTS: 1630},
			{SeasonID: "2022-23", TeamAbbreviation: "GSW", GP: 56, GS: 56, MIN: 1941, FGM: 559, FGA: 1133, FGPct: 0.493, FG3M: 273, FG3A: 639, FG3Pct: 0.427, FTM: 257, FTA: 281, FTPct: 0.915, REB: 341, AST: 352, STL: 52, BLK: 20, TOV: 179, PTS: 1648},
			{SeasonID: "2023-24", TeamAbbreviation: "GSW", GP: 74, GS: 74, MIN: 2421, FGM: 650, FGA: 1445, FGPct: 0.45, FG3M: 357, FG3A: 876, FG3Pct: 0.408, FTM: 315, FTA: 343, FTPct: 0.923, REB: 333, AST: 378, STL: 54, BLK: 28, TOV: 210, PTS: 1956},
		},
		LeBronJamesID: {
			{SeasonID: "2022-23", TeamAbbreviation: "LAL", GP: 55, GS: 54, MIN: 1954, FGM: 609, FGA: 1168, FGPct: 0.5, FG3M: 121, FG3A: 377, FG3Pct: 0.321, FTM: 254, FTA: 331, FTPct: 0.768, REB: 457, AST: 375, STL: 50, BLK: 32, TOV: 178, PTS: 1590},
			{SeasonID: "2023-24", TeamAbbreviation: "LAL", GP: 71, GS: 71, MIN: 2504, FGM: 685, FGA: 1269, FGPct: 0.54, FG3M: 149, FG3A: 363, FG3Pct: 0.41, FTM: 303, FTA: 405, FTPct: 0.75, REB: 518, AST: 589, STL: 89, BLK: 36, TOV: 245, PTS: 1822},
		},
		// 2021-22 was split between two teams; upstream adds a combined TOT row.
		JamesHardenID: {
			{SeasonID: "2021-22", TeamAbbreviation: "BKN", GP: 44, GS: 44, MIN: 1630, FGM: 322, FGA: 777, FGPct: 0.414, FG3M: 110, FG3A: 331, FG3Pct: 0.332, FTM: 361, FTA: 415, FTPct: 0.87, REB: 354, AST: 447, STL: 55, BLK: 24, TOV: 195, PTS: 1115},
			{SeasonID: "2021-22", TeamAbbreviation: "PHI", GP: 21, GS: 21, MIN: 771, FGM: 128, FGA: 319, FGPct: 0.401, FG3M: 44, FG3A: 135, FG3Pct: 0.326, FTM: 179, FTA: 201, FTPct: 0.891, REB: 150, AST: 221, STL: 27, BLK: 4, TOV: 96, PTS: 479},
			{SeasonID: "2021-22", TeamAbbreviation: "TOT", GP: 65, GS: 65, MIN: 2401, FGM: 450, FGA: 1096, FGPct: 0.41, FG3M: 154, FG3A: 466, FG3Pct: 0.33, FTM: 540, FTA: 616, FTPct: 0.877, REB: 504, AST: 668, STL: 82, BLK: 28, TOV: 291, PTS: 1594},
			{SeasonID: "2023-24", TeamAbbreviation: "LAC", GP: 72, GS: 72, MIN: 2466, FGM: 435, FGA: 1015, FGPct: 0.429, FG3M: 197, FG3A: 514, FG3Pct: 0.383, FTM: 342, FTA: 391, FTPct: 0.875, REB: 370, AST: 612, STL: 84, BLK: 56, TOV: 186, PTS: 1409},
		},
		// Missed the 2019-20 and 2020-21 seasons injured.
		KlayThompsonID: {
			{SeasonID: "2018-19", TeamAbbreviation: "GSW", GP: 78, GS: 78, MIN: 2677, FGM: 676, FGA: 1442, FGPct: 0.467, FG3M: 241, FG3A: 591, FG3Pct: 0.402, FTM: 129, FTA: 158, FTPct: 0.816, REB: 298, AST: 186, STL: 84, BLK: 46, TOV: 131, PTS: 1722},
			{SeasonID: "2019-20", TeamAbbreviation: "GSW", GP: 0, GS: 0},
		},
	}
}
