package persona

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"

	"mood-mirror/internal/domain"
)

// Composer arma saludos, frases y respuestas a partir de los perfiles.
// La fuente de aleatoriedad se inyecta para que los tests puedan fijar
// la semilla y verificar propiedades distribucionales.
type Composer struct {
	mu     sync.Mutex
	rng    *rand.Rand
	quotes Quotes
}

// NewComposer construye un compositor con la fuente de aleatoriedad dada.
func NewComposer(rng *rand.Rand, quotes Quotes) *Composer {
	if quotes == nil {
		quotes = defaultQuotes
	}
	return &Composer{rng: rng, quotes: quotes}
}

func (c *Composer) intn(n int) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rng.Intn(n)
}

// Greeting elige un saludo segun la intensidad. Los extremos son
// deterministicos (high: el mas energetico, mild: el mas suave); moderate
// sortea entre los interiores cuando hay al menos 3 variantes. Esta
// asimetria es intencional.
func (c *Composer) Greeting(profile *Profile, intensity domain.Intensity) string {
	greetings := profile.Greetings
	if len(greetings) == 0 {
		return "Hello! I'm here to help you with whatever you're feeling."
	}
	if len(greetings) == 1 {
		return greetings[0]
	}
	switch intensity {
	case domain.IntensityHigh:
		return greetings[0]
	case domain.IntensityMild:
		return greetings[len(greetings)-1]
	default:
		if len(greetings) > 2 {
			interior := greetings[1 : len(greetings)-1]
			return interior[c.intn(len(interior))]
		}
		return greetings[c.intn(len(greetings))]
	}
}

// Quote elige una frase para la emocion segun la intensidad. Con mas de 3
// frases: high sortea entre las 2 ultimas, mild entre las 2 primeras,
// moderate entre las interiores; con 3 o menos sortea entre todas.
func (c *Composer) Quote(emotion domain.Emotion, intensity domain.Intensity) string {
	quotes := c.quotes.For(emotion)
	if len(quotes) == 0 {
		return "You're doing great!"
	}
	if len(quotes) <= 3 {
		return quotes[c.intn(len(quotes))]
	}
	switch intensity {
	case domain.IntensityHigh:
		tail := quotes[len(quotes)-2:]
		return tail[c.intn(len(tail))]
	case domain.IntensityMild:
		head := quotes[:2]
		return head[c.intn(len(head))]
	default:
		interior := quotes[1 : len(quotes)-1]
		return interior[c.intn(len(interior))]
	}
}

// Response antepone un patron de respuesta del perfil a la frase elegida.
func (c *Composer) Response(profile *Profile, emotion domain.Emotion, intensity domain.Intensity) string {
	quote := c.Quote(emotion, intensity)
	if len(profile.ResponsePatterns) == 0 {
		return quote
	}
	pattern := profile.ResponsePatterns[c.intn(len(profile.ResponsePatterns))]
	return pattern + " " + quote
}

// Choose elige una opcion al azar de la lista dada.
func (c *Composer) Choose(options []string) string {
	if len(options) == 0 {
		return ""
	}
	return options[c.intn(len(options))]
}

// Starter elige un disparador de conversacion del perfil.
func (c *Composer) Starter(profile *Profile) string {
	if len(profile.Starters) == 0 {
		return "How are you today?"
	}
	return profile.Starters[c.intn(len(profile.Starters))]
}

// Pattern elige un patron de respuesta del perfil.
func (c *Composer) Pattern(profile *Profile) string {
	if len(profile.ResponsePatterns) == 0 {
		return "I understand how you feel."
	}
	return profile.ResponsePatterns[c.intn(len(profile.ResponsePatterns))]
}

// SampleActivities devuelve hasta n actividades distintas del perfil.
func (c *Composer) SampleActivities(profile *Profile, n int) []string {
	activities := profile.Activities
	if n >= len(activities) {
		out := make([]string, len(activities))
		copy(out, activities)
		return out
	}
	c.mu.Lock()
	perm := c.rng.Perm(len(activities))
	c.mu.Unlock()
	out := make([]string, 0, n)
	for _, idx := range perm[:n] {
		out = append(out, activities[idx])
	}
	return out
}

// TimeBasedActivities adapta la lista de actividades a la franja horaria.
func TimeBasedActivities(activities []string, hour int) []string {
	prefix := "This evening: "
	slice := activities
	switch {
	case hour >= 6 && hour < 12:
		prefix = "This morning: "
		if len(activities) > 3 {
			slice = activities[:3]
		}
	case hour >= 12 && hour < 18:
		prefix = "This afternoon: "
		if len(activities) > 5 {
			slice = activities[2:5]
		} else if len(activities) > 2 {
			slice = activities[2:]
		}
	default:
		if len(activities) > 3 {
			slice = activities[len(activities)-3:]
		}
	}
	out := make([]string, 0, len(slice))
	for _, a := range slice {
		out = append(out, fmt.Sprintf("%s%s", prefix, strings.ToLower(a)))
	}
	return out
}

// FollowUpTips son consejos genericos para el endpoint de seguimiento.
var FollowUpTips = []string{
	"Take your time with whatever approach feels right.",
	"Trust your instincts about what you need most.",
	"Remember that all feelings are temporary and valuable.",
	"Use this as information about what matters to you.",
}

// FollowUpTip elige un consejo de seguimiento.
func (c *Composer) FollowUpTip() string {
	return FollowUpTips[c.intn(len(FollowUpTips))]
}
