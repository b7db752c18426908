package service_test

import (
	"testing"
	"time"

	"github.com/metorial/identity-core/internal/identity/domain"
	"github.com/metorial/identity-core/internal/identity/service"
	"github.com/stretchr/testify/assert"
)

func TestStateOf(t *testing.T) {
	now := time.Now()

	intent := &domain.AuthIntent{
		ID: "intent-1",
		Steps: []domain.AuthIntentStep{
			{ID: "step-0", Index: 0},
		},
	}
	assert.Equal(t, service.StateNeedsVerification, service.StateOf(intent))

	intent.Steps[0].VerifiedAt = &now
	// Step stamps without the intent stamp still count as unverified.
	assert.Equal(t, service.StateNeedsVerification, service.StateOf(intent))

	intent.VerifiedAt = &now
	assert.Equal(t, service.StateNeedsUser, service.StateOf(intent))

	intent.UserID = "user-1"
	assert.Equal(t, service.StateNeedsCaptcha, service.StateOf(intent))

	intent.CaptchaVerifiedAt = &now
	assert.Equal(t, service.StateVerified, service.StateOf(intent))

	intent.ConsumedAt = &now
	assert.Equal(t, service.StateConsumed, service.StateOf(intent))
}

func TestCurrentStepIsOnePastLastVerified(t *testing.T) {
	now := time.Now()
	intent := &domain.AuthIntent{
		Steps: []domain.AuthIntentStep{
			{ID: "step-0", Index: 0, VerifiedAt: &now},
			{ID: "step-1", Index: 1},
		},
	}
	step := intent.CurrentStep()
	assert.NotNil(t, step)
	assert.Equal(t, "step-1", step.ID)

	intent.Steps[1].VerifiedAt = &now
	assert.Nil(t, intent.CurrentStep())
}
