package util

// Level band names, highest first.
const (
	LevelNameExpert       = "전문가"
	LevelNameAdvanced     = "숙련자"
	LevelNameIntermediate = "중급자"
	LevelNameBeginner     = "초보자"
	LevelNameNovice       = "입문자"
	LevelNameInterested   = "관심인"
)

// ComputeLevel maps total experience points to a level band. Pure and total:
// every non-negative xp falls into exactly one band, highest threshold first.
func ComputeLevel(xp int) (int, string) {
	switch {
	case xp >= 500:
		return 6, LevelNameExpert
	case xp >= 400:
		return 5, LevelNameAdvanced
	case xp >= 300:
		return 4, LevelNameIntermediate
	case xp >= 200:
		return 3, LevelNameBeginner
	case xp >= 100:
		return 2, LevelNameNovice
	default:
		return 1, LevelNameInterested
	}
}
