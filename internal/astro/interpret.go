package astro

import "fmt"

// Canned interpretation text keyed by planet and sign. Only the personal
// bodies carry sign texts; everything else falls back to a generic
// "<planet> in <sign>" sentence.
var signTexts = map[Planet]map[Sign]string{
	Sun: {
		Aries:       "You are a natural leader with pioneering spirit and courage.",
		Taurus:      "You seek stability and find joy in life's sensual pleasures.",
		Gemini:      "Your curious mind craves communication and variety.",
		Cancer:      "You are deeply nurturing and emotionally intuitive.",
		Leo:         "You shine with creativity and a generous, warm heart.",
		Virgo:       "You are analytical, detail-oriented, and service-driven.",
		Libra:       "You seek harmony, balance, and beautiful connections.",
		Scorpio:     "You possess intense depth and transformative power.",
		Sagittarius: "You are an optimistic seeker of truth and adventure.",
		Capricorn:   "You are ambitious, disciplined, and goal-oriented.",
		Aquarius:    "You are innovative, humanitarian, and uniquely yourself.",
		Pisces:      "You are deeply intuitive, compassionate, and artistic.",
	},
	Moon: {
		Aries:       "Your emotions are fiery and you need independence.",
		Taurus:      "You crave emotional security and peaceful surroundings.",
		Gemini:      "You process emotions through communication and analysis.",
		Cancer:      "You are deeply sensitive and naturally nurturing.",
		Leo:         "You need emotional recognition and creative expression.",
		Virgo:       "You find comfort in order and being of service.",
		Libra:       "You seek emotional harmony and balanced relationships.",
		Scorpio:     "Your emotions run deep with intense loyalty.",
		Sagittarius: "You need freedom and optimism to feel emotionally fulfilled.",
		Capricorn:   "You are emotionally reserved but deeply responsible.",
		Aquarius:    "You process emotions intellectually and need independence.",
		Pisces:      "You are deeply empathic and spiritually sensitive.",
	},
	Venus: {
		Aries:       "You love the thrill of the chase and passionate connections.",
		Taurus:      "You seek loyal, sensual, and stable love.",
		Gemini:      "You are attracted to wit, intelligence, and variety.",
		Cancer:      "You seek nurturing and emotionally secure love.",
		Leo:         "You love with dramatic flair and generous warmth.",
		Virgo:       "You show love through acts of service and devotion.",
		Libra:       "You seek harmonious, balanced, and beautiful partnerships.",
		Scorpio:     "You love intensely with deep emotional bonds.",
		Sagittarius: "You seek freedom and adventure in love.",
		Capricorn:   "You approach love with commitment and long-term vision.",
		Aquarius:    "You value friendship and intellectual connection in love.",
		Pisces:      "You love unconditionally with romantic idealism.",
	},
	Mars: {
		Aries:       "Your drive is fierce, direct, and competitive.",
		Taurus:      "Your determination is steady and unstoppable.",
		Gemini:      "Your energy is versatile and mentally agile.",
		Cancer:      "You fight to protect those you love.",
		Leo:         "Your passion is dramatic and heart-centered.",
		Virgo:       "Your energy is precise and detail-focused.",
		Libra:       "You fight for fairness and balanced action.",
		Scorpio:     "Your willpower is intense and strategic.",
		Sagittarius: "Your drive is adventurous and optimistic.",
		Capricorn:   "Your ambition is disciplined and goal-oriented.",
		Aquarius:    "Your energy is innovative and rebellious.",
		Pisces:      "Your drive is inspired by dreams and compassion.",
	},
}

// House placement supplements. When a planet has an entry for its house
// the text is appended to the sign interpretation, never replacing it.
var houseTexts = map[Planet]map[int]string{
	Sun: {
		1:  "Your identity leads every room you enter.",
		10: "Your life's work is where your light is most visible.",
	},
	Moon: {
		4:  "Home and roots are your emotional anchor.",
		7:  "Your feelings find their mirror in close partnership.",
		12: "Your inner life runs deeper than others can see.",
	},
	Venus: {
		5: "Romance and creative play come naturally to you.",
		7: "Partnership is where your affection flourishes.",
	},
	Mars: {
		1:  "You act first and explain later.",
		6:  "Work is where your energy burns brightest.",
		10: "Your ambition is pointed squarely at achievement.",
	},
	Mercury: {
		3: "Your mind thrives on exchange, writing, and short journeys.",
	},
}

// SignInterpretation returns the canned text for a planet in a sign,
// falling back to a plain placement sentence when no entry exists.
func SignInterpretation(p Planet, s Sign) string {
	if texts, ok := signTexts[p]; ok {
		if text, ok := texts[s]; ok {
			return text
		}
	}
	return fmt.Sprintf("%s in %s", p.Name(), s.Name())
}

// HouseInterpretation returns the house supplement text, if one exists.
func HouseInterpretation(p Planet, house int) (string, bool) {
	texts, ok := houseTexts[p]
	if !ok {
		return "", false
	}
	text, ok := texts[house]
	return text, ok
}

var sunKeywords = map[string]string{
	"Aries":       "courage and initiative",
	"Taurus":      "stability and determination",
	"Gemini":      "curiosity and adaptability",
	"Cancer":      "nurturing and intuition",
	"Leo":         "creativity and warmth",
	"Virgo":       "precision and service",
	"Libra":       "harmony and diplomacy",
	"Scorpio":     "intensity and transformation",
	"Sagittarius": "optimism and adventure",
	"Capricorn":   "ambition and discipline",
	"Aquarius":    "innovation and independence",
	"Pisces":      "compassion and imagination",
}

var moonKeywords = map[string]string{
	"Aries":       "passionate reactions",
	"Taurus":      "emotional stability",
	"Gemini":      "mental processing",
	"Cancer":      "deep sensitivity",
	"Leo":         "dramatic expression",
	"Virgo":       "analytical feelings",
	"Libra":       "harmonious needs",
	"Scorpio":     "intense depths",
	"Sagittarius": "optimistic outlook",
	"Capricorn":   "reserved emotions",
	"Aquarius":    "detached perspective",
	"Pisces":      "empathic absorption",
}

var risingKeywords = map[string]string{
	"Aries":       "bold confidence",
	"Taurus":      "calm reliability",
	"Gemini":      "witty charm",
	"Cancer":      "nurturing warmth",
	"Leo":         "magnetic presence",
	"Virgo":       "modest competence",
	"Libra":       "graceful diplomacy",
	"Scorpio":     "mysterious intensity",
	"Sagittarius": "jovial optimism",
	"Capricorn":   "serious authority",
	"Aquarius":    "unique individuality",
	"Pisces":      "dreamy sensitivity",
}

// SunKeyword, MoonKeyword and RisingKeyword take the sign display name so
// that callers holding a degraded "Unknown" sign still get the fallback.
func SunKeyword(signName string) string {
	if kw, ok := sunKeywords[signName]; ok {
		return kw
	}
	return "unique energy"
}

func MoonKeyword(signName string) string {
	if kw, ok := moonKeywords[signName]; ok {
		return kw
	}
	return "emotional depth"
}

func RisingKeyword(signName string) string {
	if kw, ok := risingKeywords[signName]; ok {
		return kw
	}
	return "distinctive style"
}
