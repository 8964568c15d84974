package application

import "strings"

var motivationPhrases = []string{
	"Keep going, you can do it!",
	"Nice! Hold this pace!",
	"Great work, you're almost there!",
	"Excellent, you're doing really well today!",
	"Come on, just a little more!",
}

type techniqueTip struct {
	keyword string
	tip     string
}

var techniqueTips = []techniqueTip{
	{keyword: "forehand", tip: "Take the racket back early and swing through the ball. Don't forget the follow-through!"},
	{keyword: "backhand", tip: "Turn your shoulders to prepare and keep the swing steady."},
	{keyword: "serve", tip: "Keep the toss consistent and strike the ball at its highest point."},
	{keyword: "footwork", tip: "Stay light on your feet and always return to the ready position."},
}

const defaultTechniqueTip = "Keep good posture and remember to breathe."

// TechniqueTip returns the coaching tip for the first keyword found in the
// exercise hint.
func TechniqueTip(exerciseHint string) string {
	hint := strings.ToLower(exerciseHint)
	for _, candidate := range techniqueTips {
		if strings.Contains(hint, candidate.keyword) {
			return candidate.tip
		}
	}
	return defaultTechniqueTip
}

func MotivationPhrases() []string {
	return append([]string(nil), motivationPhrases...)
}
