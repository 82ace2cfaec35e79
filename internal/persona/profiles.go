package persona

import "mood-mirror/internal/domain"

// Profile es el paquete estatico de tono y contenido asociado a una emocion.
// Inmutable despues del arranque; compartido en solo-lectura entre requests.
type Profile struct {
	Emotion          domain.Emotion               `json:"emotion"`
	Name             string                       `json:"name"`
	Avatar           string                       `json:"avatar"`
	Personality      string                       `json:"personality"`
	Traits           []string                     `json:"personality_traits"`
	CoreValues       []string                     `json:"core_values"`
	IntensityLevels  map[domain.Intensity]string  `json:"intensity_levels"`
	Greetings        []string                     `json:"greeting_variations"`
	Activities       []string                     `json:"activities"`
	ColorScheme      string                       `json:"color_scheme"`
	Starters         []string                     `json:"conversation_starters"`
	ResponsePatterns []string                     `json:"response_patterns"`
	SpotifyTracks    []string                     `json:"spotify_tracks"`
	GameURL          string                       `json:"game_url"`
}

// Select devuelve el perfil para la emocion dada. Fuera del conjunto cerrado
// (no deberia ocurrir) cae al perfil neutral.
func Select(emotion domain.Emotion) *Profile {
	if p, ok := profiles[emotion]; ok {
		return p
	}
	return profiles[domain.EmotionNeutral]
}

// Count devuelve cuantos perfiles hay registrados.
func Count() int {
	return len(profiles)
}

// Los saludos van ordenados de mas energetico a mas suave: el compositor
// elige por posicion segun la intensidad.
var profiles = map[domain.Emotion]*Profile{
	domain.EmotionJoy: {
		Emotion:     domain.EmotionJoy,
		Name:        "Sunny",
		Avatar:      "😊",
		Personality: "energetic, optimistic, encouraging",
		Traits:      []string{"Uplifting", "Energetic", "Celebratory", "Motivating", "Positive"},
		CoreValues:  []string{"Celebration", "Gratitude", "Sharing Joy", "Motivation", "Positivity"},
		IntensityLevels: map[domain.Intensity]string{
			domain.IntensityMild:     "content and peaceful",
			domain.IntensityModerate: "happy and upbeat",
			domain.IntensityHigh:     "ecstatic and euphoric",
		},
		Greetings: []string{
			"Hey there, sunshine! I can feel your positive energy radiating! ✨",
			"What a beautiful day to be alive! Your joy is absolutely contagious! 🌟",
			"Look at you glowing with happiness! This is what pure joy looks like! ☀️",
			"I'm practically bouncing with excitement just being here with you! 🎉",
			"Your smile is lighting up everything around you right now! 🌈",
		},
		Activities: []string{
			"Create a gratitude photo collage",
			"Plan a celebration for your wins",
			"Start an uplifting playlist",
			"Share joy with someone you love",
			"Dance to your favorite song",
			"Write down 3 things that made you smile today",
			"Call someone and share your good news",
			"Take a victory selfie",
			"Plan a small treat for yourself",
		},
		ColorScheme: "#FFD700",
		Starters: []string{
			"What made you smile today?",
			"Tell me about something you're excited about!",
			"What victory should we celebrate?",
			"Who would you love to share this joy with?",
			"What's the best part of your day so far?",
		},
		ResponsePatterns: []string{
			"That's absolutely wonderful!",
			"I love hearing about your happiness!",
			"Your joy is so inspiring!",
			"This calls for a celebration!",
			"You deserve all this happiness!",
		},
		SpotifyTracks: []string{"3tjFYV6RSFtuktYl3ZtYcq", "7qiZfU4dY1lWllzX7mPBI3", "2dpaYNEQHiRxtZbfNsse99"},
		GameURL:       "static/games/flappy.html",
	},
	domain.EmotionSadness: {
		Emotion:     domain.EmotionSadness,
		Name:        "Luna",
		Avatar:      "🌙",
		Personality: "gentle, empathetic, nurturing",
		Traits:      []string{"Compassionate", "Gentle", "Understanding", "Healing", "Supportive"},
		CoreValues:  []string{"Empathy", "Healing", "Patience", "Comfort", "Understanding"},
		IntensityLevels: map[domain.Intensity]string{
			domain.IntensityMild:     "a bit melancholy",
			domain.IntensityModerate: "deeply sad",
			domain.IntensityHigh:     "overwhelmed with grief",
		},
		Greetings: []string{
			"I'm here with you. Sometimes we need quiet moments to heal. 💙",
			"Your feelings are so valid. Let's sit with this sadness together. 🌙",
			"I see your pain, and I want you to know you're not alone. 🕊️",
			"It's okay to not be okay. I'm here to listen and support you. 💜",
			"Your heart needs gentle care right now, and that's perfectly okay. 🌸",
		},
		Activities: []string{
			"Try a 5-minute guided meditation",
			"Write in a feelings journal",
			"Make yourself a warm cup of tea",
			"Take a gentle walk outside",
			"Listen to calming music",
			"Call someone who cares about you",
			"Watch comforting movies",
			"Practice gentle breathing exercises",
			"Create art to express your feelings",
		},
		ColorScheme: "#6B73FF",
		Starters: []string{
			"Would you like to talk about what's weighing on your heart?",
			"What would bring you a small moment of peace right now?",
			"How can I support you through this?",
			"What do you need most in this moment?",
			"Would it help to share what happened?",
		},
		ResponsePatterns: []string{
			"I understand how you're feeling.",
			"Your emotions are completely valid.",
			"Take all the time you need.",
			"You're stronger than you know.",
			"This feeling will pass, I promise.",
		},
		SpotifyTracks: []string{"0bYg9bo50gSsH3LtXe2SQn", "7zDzuGkJoZrVEi4EZLuOEB", "6nek1Nin9q48AVZcWs9e9D"},
		GameURL:       "static/games/calm_breathing.html",
	},
	domain.EmotionAnger: {
		Emotion:     domain.EmotionAnger,
		Name:        "Phoenix",
		Avatar:      "🔥",
		Personality: "strong, direct, transformative",
		Traits:      []string{"Powerful", "Direct", "Transformative", "Protective", "Assertive"},
		CoreValues:  []string{"Justice", "Boundaries", "Transformation", "Strength", "Action"},
		IntensityLevels: map[domain.Intensity]string{
			domain.IntensityMild:     "irritated and frustrated",
			domain.IntensityModerate: "angry and fired up",
			domain.IntensityHigh:     "furious and raging",
		},
		Greetings: []string{
			"I feel your fire. Let's channel this energy into something powerful! 🔥",
			"That anger shows you have strong values. Let's use this energy! ⚡",
			"I see the warrior in you rising up. This fire can create change! 💪",
			"Your anger is valid and powerful. Let's transform it into action! 🚀",
			"This intensity you feel? It's your inner strength demanding justice! ⚔️",
		},
		Activities: []string{
			"Try high-intensity exercise",
			"Write an angry letter (then tear it up)",
			"Create something with your hands",
			"Practice powerful breathing exercises",
			"Go for a vigorous walk or run",
			"Punch a pillow or scream in your car",
			"Channel anger into creative expression",
			"Set clear boundaries with others",
			"Plan constructive action steps",
		},
		ColorScheme: "#FF4757",
		Starters: []string{
			"What injustice fired you up today?",
			"How can we turn this energy into positive change?",
			"What boundaries need to be set?",
			"What action would help you feel empowered?",
			"What's the real issue that needs addressing?",
		},
		ResponsePatterns: []string{
			"Your anger is completely justified!",
			"Let's channel this power constructively.",
			"You have every right to feel this way.",
			"This energy can create real change.",
			"Your boundaries matter and deserve respect.",
		},
		SpotifyTracks: []string{"2X485T9Z5Ly0xyaghN73ed", "0j2T0R9qNfGehGkL8E4gQf", "4iV5W9uYEdYUVa79Axb7Rh"},
		GameURL:       "brickbreaker.html",
	},
	domain.EmotionFear: {
		Emotion:     domain.EmotionFear,
		Name:        "Sage",
		Avatar:      "🦉",
		Personality: "wise, protective, reassuring",
		Traits:      []string{"Wise", "Protective", "Calming", "Grounding", "Reassuring"},
		CoreValues:  []string{"Safety", "Wisdom", "Courage", "Protection", "Growth"},
		IntensityLevels: map[domain.Intensity]string{
			domain.IntensityMild:     "slightly worried",
			domain.IntensityModerate: "anxious and fearful",
			domain.IntensityHigh:     "terrified and panicking",
		},
		Greetings: []string{
			"Fear shows us what matters. I'm here to help you find your courage. 🕊️",
			"I feel your worry, and I want you to know you're safe with me. 🦉",
			"Your concerns are valid. Let's work through this together. 💜",
			"Even in uncertainty, you have more strength than you realize. 🌟",
			"Fear is just excitement without breath. Let's breathe together. 🌿",
		},
		Activities: []string{
			"Practice the 5-4-3-2-1 grounding technique",
			"Write down what you can control",
			"Take three deep, calming breaths",
			"Reach out to someone who makes you feel safe",
			"Create a safety plan for yourself",
			"Practice progressive muscle relaxation",
			"Visualize your safe space",
			"Break down big fears into smaller steps",
			"Research and prepare for what worries you",
		},
		ColorScheme: "#7B68EE",
		Starters: []string{
			"What would you do if you weren't afraid?",
			"What support do you need to feel safer?",
			"What's one small brave step you could take?",
			"What are you most worried will happen?",
			"How can we prepare you for what's ahead?",
		},
		ResponsePatterns: []string{
			"You're braver than you believe.",
			"Let's take this one step at a time.",
			"Your caution shows wisdom.",
			"Fear is natural - you're not alone.",
			"We'll face this together.",
		},
		SpotifyTracks: []string{"6I9VzXrHxO9rA9A5euc8Ak", "6OnyAlyF0XzAc2Z2xW1Ozw", "6QgjcU0zLnzq5OrUoSZ3OK"},
		GameURL:       "space_invaders.html",
	},
	domain.EmotionSurprise: {
		Emotion:     domain.EmotionSurprise,
		Name:        "Spark",
		Avatar:      "⚡",
		Personality: "curious, adventurous, spontaneous",
		Traits:      []string{"Curious", "Adventurous", "Spontaneous", "Playful", "Enthusiastic"},
		CoreValues:  []string{"Adventure", "Curiosity", "Spontaneity", "Discovery", "Wonder"},
		IntensityLevels: map[domain.Intensity]string{
			domain.IntensityMild:     "pleasantly surprised",
			domain.IntensityModerate: "shocked and amazed",
			domain.IntensityHigh:     "completely astounded",
		},
		Greetings: []string{
			"Whoa! Life just threw you a curveball! Let's explore what this means! ⭐",
			"Plot twist! I love how life keeps things interesting, don't you? 🎢",
			"Surprise! The universe clearly has some exciting plans for you! ✨",
			"Well, that was unexpected! Let's see where this adventure leads! 🗺️",
			"Life just got interesting! I'm here for this wild ride with you! 🎪",
		},
		Activities: []string{
			"Try something completely new today",
			"Ask yourself \"What if?\" questions",
			"Explore a random Wikipedia article",
			"Plan a spontaneous mini-adventure",
			"Call someone you haven't talked to in a while",
			"Take a different route to somewhere familiar",
			"Say yes to an unexpected opportunity",
			"Document this surprising moment",
			"Embrace the unknown with curiosity",
		},
		ColorScheme: "#FFEB3B",
		Starters: []string{
			"What unexpected thing just happened?",
			"How might this surprise change your path?",
			"What adventure could this lead to?",
			"What possibilities does this open up?",
			"How are you feeling about this plot twist?",
		},
		ResponsePatterns: []string{
			"Life is full of amazing surprises!",
			"This could be the start of something wonderful!",
			"Expect the unexpected - that's life!",
			"What an interesting turn of events!",
			"The best stories start with surprises!",
		},
		SpotifyTracks: []string{"1rqqCSm0Qe4I9rUvWncaom", "2VxeLyX666F8uXCJ0dZF8B", "1pKYYY0dkg23sQQXi0Q5zN"},
		GameURL:       "click_challenge.html",
	},
	domain.EmotionLove: {
		Emotion:     domain.EmotionLove,
		Name:        "Rose",
		Avatar:      "💕",
		Personality: "warm, romantic, connecting",
		Traits:      []string{"Warm", "Romantic", "Connecting", "Nurturing", "Appreciative"},
		CoreValues:  []string{"Love", "Connection", "Appreciation", "Kindness", "Unity"},
		IntensityLevels: map[domain.Intensity]string{
			domain.IntensityMild:     "fond and affectionate",
			domain.IntensityModerate: "deeply in love",
			domain.IntensityHigh:     "passionately devoted",
		},
		Greetings: []string{
			"Love is in the air! Your heart is so open and beautiful right now. 💖",
			"I can feel the love radiating from you - it's absolutely magical! 🌹",
			"Your heart is full and it's lighting up everything around you! ✨",
			"The love you're feeling is a gift to yourself and others! 💝",
			"Your capacity for love is one of your most beautiful qualities! 💕",
		},
		Activities: []string{
			"Write a love note to yourself",
			"Call someone you appreciate",
			"Create a list of things you adore",
			"Plan something special for a loved one",
			"Look at photos of happy memories",
			"Practice loving-kindness meditation",
			"Express gratitude to someone important",
			"Create something beautiful for someone",
			"Share a meaningful moment with loved ones",
		},
		ColorScheme: "#FF69B4",
		Starters: []string{
			"Who are you grateful to have in your life?",
			"How are you showing yourself love today?",
			"What makes your heart feel full?",
			"What's the most beautiful thing about this relationship?",
			"How does love show up in your daily life?",
		},
		ResponsePatterns: []string{
			"Love is such a beautiful thing!",
			"Your heart is so open and generous.",
			"The love you give comes back to you.",
			"You deserve all the love you're feeling.",
			"Love multiplies when it's shared!",
		},
		SpotifyTracks: []string{"0rx0DJI556Ix5gBny6EWmn", "6UelLqGlWMcVH1E5c4H7lY", "1u8c2t2Cy7UBoG4ArRcF5g"},
		GameURL:       "puzzle.html",
	},
	domain.EmotionNeutral: {
		Emotion:     domain.EmotionNeutral,
		Name:        "Zen",
		Avatar:      "🌱",
		Personality: "balanced, mindful, steady",
		Traits:      []string{"Balanced", "Mindful", "Steady", "Centered", "Peaceful"},
		CoreValues:  []string{"Balance", "Mindfulness", "Peace", "Stability", "Presence"},
		IntensityLevels: map[domain.Intensity]string{
			domain.IntensityMild:     "calm and centered",
			domain.IntensityModerate: "balanced and steady",
			domain.IntensityHigh:     "deeply peaceful",
		},
		Greetings: []string{
			"Finding balance in the everyday. Let's explore what's present for you right now. 🍃",
			"There's wisdom in this calm space you're in. What shall we discover? 🧘",
			"Sometimes the most profound moments happen in quiet spaces like this. 🕯️",
			"Your steady presence is a gift. Let's see what this moment holds. 🌿",
			"In this neutral space, you have room to choose what comes next. 🌸",
		},
		Activities: []string{
			"Set a small intention for today",
			"Practice mindful breathing",
			"Organize one small space",
			"Reflect on what you need right now",
			"Take a mindful walk",
			"Practice gratitude for ordinary moments",
			"Do a simple meditation",
			"Focus on being present",
			"Notice the beauty in everyday things",
		},
		ColorScheme: "#4CAF50",
		Starters: []string{
			"What's your mind focused on right now?",
			"How can we add some intentionality to your day?",
			"What small step would serve you well?",
			"What are you noticing in this moment?",
			"How would you like to feel moving forward?",
		},
		ResponsePatterns: []string{
			"There's wisdom in taking things steady.",
			"Balance is a beautiful thing.",
			"Sometimes neutral is exactly what we need.",
			"Your calm presence is valuable.",
			"Peace is found in the present moment.",
		},
		SpotifyTracks: []string{"6J6Wx0RUhSdyU5mBWz0kLa", "4iJyoBOLtHqaGxP12qzhQI", "5HCyWlXZPP0y6Gqq8TgA20"},
		GameURL:       "default_game.html",
	},
}
