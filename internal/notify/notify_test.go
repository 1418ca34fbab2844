package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"pomotick/internal/core/model"
)

func TestMessageForWorkCompletion(t *testing.T) {
	title, body := Message(model.ModeWork, 1)
	assert.Equal(t, "Work session complete", title)
	assert.Contains(t, body, "1 session done")

	_, body = Message(model.ModeWork, 4)
	assert.Contains(t, body, "4 sessions done")
}

func TestMessageForBreakCompletion(t *testing.T) {
	for _, mode := range []model.Mode{model.ModeShortBreak, model.ModeLongBreak} {
		title, body := Message(mode, 2)
		assert.Equal(t, "Break over", title)
		assert.Contains(t, body, "Back to work")
	}
}
