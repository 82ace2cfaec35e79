package emotion

import "mood-mirror/internal/domain"

// lexiconEntry agrupa las keywords de una categoria y su peso base.
type lexiconEntry struct {
	keywords []string
	weight   float64
}

// keywordLexicon mapea cada categoria a su set de keywords ponderadas.
// Se recorre siempre en el orden de domain.Emotions para que los empates
// sean estables entre ejecuciones.
var keywordLexicon = map[domain.Emotion]lexiconEntry{
	domain.EmotionJoy: {
		keywords: []string{
			"happy", "excited", "joy", "celebration", "amazing", "wonderful", "fantastic",
			"great", "awesome", "brilliant", "perfect", "love", "thrilled", "ecstatic",
			"delighted", "cheerful", "elated", "euphoric", "blissful", "overjoyed",
		},
		weight: 1.0,
	},
	domain.EmotionSadness: {
		keywords: []string{
			"sad", "depressed", "down", "upset", "crying", "tears", "lonely", "empty",
			"heartbroken", "devastated", "miserable", "gloomy", "melancholy", "grief",
			"sorrow", "despair", "hopeless", "disappointed", "hurt", "lost",
		},
		weight: 1.0,
	},
	domain.EmotionAnger: {
		keywords: []string{
			"angry", "mad", "furious", "rage", "annoyed", "frustrated", "irritated",
			"pissed", "outraged", "livid", "enraged", "heated", "bitter", "resentful",
			"hostile", "aggressive", "indignant", "incensed", "infuriated", "fuming",
		},
		weight: 1.0,
	},
	domain.EmotionFear: {
		keywords: []string{
			"scared", "afraid", "terrified", "anxious", "worried", "nervous", "panic",
			"frightened", "concerned", "stressed", "overwhelmed", "insecure", "uncertain",
			"apprehensive", "alarmed", "distressed", "uneasy", "troubled", "fearful", "dread",
		},
		weight: 1.0,
	},
	domain.EmotionSurprise: {
		keywords: []string{
			"surprised", "shocked", "amazed", "unexpected", "sudden", "wow", "incredible",
			"unbelievable", "astonishing", "stunning", "remarkable", "extraordinary",
			"mind-blowing", "jaw-dropping", "startled", "bewildered", "flabbergasted",
			"astounded", "dumbfounded", "taken aback",
		},
		weight: 1.0,
	},
	domain.EmotionLove: {
		keywords: []string{
			"love", "adore", "cherish", "devoted", "affection", "romantic", "passionate",
			"intimate", "caring", "tender", "warmth", "fondness", "attachment", "bond",
			"connection", "soulmate", "beloved", "darling", "sweetheart", "crush",
		},
		weight: 1.0,
	},
	domain.EmotionNeutral: {
		keywords: []string{
			"okay", "fine", "normal", "regular", "usual", "average", "typical", "standard",
			"ordinary", "common", "routine", "everyday", "mundane", "calm", "steady",
			"balanced", "stable", "peaceful", "quiet", "still",
		},
		weight: 0.5,
	},
}
