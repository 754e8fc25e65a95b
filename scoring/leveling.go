package scoring

// LevelTier is a closed score band. MaxScore < 0 marks the terminal tier.
type LevelTier struct {
	Name     string
	MinScore int
	MaxScore int
}

var levelTiers = []LevelTier{
	{Name: "Beginner", MinScore: 0, MaxScore: 50},
	{Name: "Intermediate", MinScore: 51, MaxScore: 150},
	{Name: "Pro", MinScore: 151, MaxScore: -1},
}

type Level struct {
	Name            string  `json:"name"`
	ProgressPercent float64 `json:"progress_percent"`
}

func tierFor(total int) LevelTier {
	for _, tier := range levelTiers[:len(levelTiers)-1] {
		if total <= tier.MaxScore {
			return tier
		}
	}
	return levelTiers[len(levelTiers)-1]
}

// LevelFor maps a total score to its level name. The 50/51 and 150/151
// boundaries are inclusive on both ends of each band.
func LevelFor(total int) string {
	return tierFor(total).Name
}

// ProgressFor returns the progress percentage toward the next level,
// capped at 100. The terminal tier always reports 100.
func ProgressFor(total int) float64 {
	tier := tierFor(total)
	if tier.MaxScore < 0 {
		return 100
	}
	bandWidth := tier.MaxScore - tier.MinScore + 1
	progress := float64(total-tier.MinScore) / float64(bandWidth) * 100
	if progress > 100 {
		return 100
	}
	return progress
}

func LevelInfo(total int) *Level {
	return &Level{
		Name:            LevelFor(total),
		ProgressPercent: ProgressFor(total),
	}
}
