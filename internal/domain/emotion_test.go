package domain

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestParseEmotion(t *testing.T) {
	if got := ParseEmotion(" JOY "); got != EmotionJoy {
		t.Fatalf("expected joy, got %s", got)
	}
	if got := ParseEmotion("disgust"); got != EmotionNeutral {
		t.Fatalf("expected unknown label to coerce to neutral, got %s", got)
	}
	if got := ParseEmotion(""); got != EmotionNeutral {
		t.Fatalf("expected empty label to coerce to neutral, got %s", got)
	}
}

func TestEmotionScoresSortStable(t *testing.T) {
	scores := EmotionScores{
		{Label: EmotionJoy, Score: 0.5},
		{Label: EmotionSadness, Score: 0.5},
		{Label: EmotionAnger, Score: 0.9},
	}
	scores.SortDesc()

	if scores[0].Label != EmotionAnger {
		t.Fatalf("expected anger first, got %s", scores[0].Label)
	}
	// Empate 0.5: se preserva el orden previo (joy antes que sadness).
	if scores[1].Label != EmotionJoy || scores[2].Label != EmotionSadness {
		t.Fatalf("expected stable tie order, got %+v", scores)
	}
}

func TestEmotionScoresJSONRoundTrip(t *testing.T) {
	original := EmotionScores{
		{Label: EmotionJoy, Score: 0.81},
		{Label: EmotionLove, Score: 0.12},
		{Label: EmotionNeutral, Score: 0.07},
	}

	data, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var decoded EmotionScores
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if !reflect.DeepEqual(original, decoded) {
		t.Fatalf("round trip mismatch: %+v vs %+v", original, decoded)
	}
	for i := 1; i < len(decoded); i++ {
		if decoded[i-1].Score < decoded[i].Score {
			t.Fatalf("descending order lost after round trip")
		}
	}
}

func TestScoreVectorForProjectsDeclarationOrder(t *testing.T) {
	vec := ScoreVectorFor(EmotionScores{
		{Label: EmotionNeutral, Score: 0.25},
		{Label: EmotionJoy, Score: 0.75},
	})
	slice := vec.Slice()
	if len(slice) != len(Emotions) {
		t.Fatalf("expected %d dims, got %d", len(Emotions), len(slice))
	}
	if slice[0] != 0.75 {
		t.Fatalf("expected joy dim 0.75, got %v", slice[0])
	}
	if slice[len(slice)-1] != 0.25 {
		t.Fatalf("expected neutral dim 0.25, got %v", slice[len(slice)-1])
	}
}
