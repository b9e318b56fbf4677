package dto

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
)

func TestCreateTaskRequestFrequencyVocabulary(t *testing.T) {
	base := CreateTaskRequest{
		HouseholdID: "hh-1", DomainID: "dom-1", OwnerID: "user-1", Title: "Laundry",
	}

	for _, freq := range []string{"", "daily", "weekly", "monthly", "custom"} {
		req := base
		req.FrequencyType = freq
		assert.NoError(t, binding.Validator.ValidateStruct(&req), freq)
	}

	req := base
	req.FrequencyType = "yearly"
	assert.Error(t, binding.Validator.ValidateStruct(&req))
}

func TestUpdateTaskRequestFrequencyVocabulary(t *testing.T) {
	custom := "custom"
	req := UpdateTaskRequest{FrequencyType: &custom}
	assert.NoError(t, binding.Validator.ValidateStruct(&req))

	bad := "hourly"
	req.FrequencyType = &bad
	assert.Error(t, binding.Validator.ValidateStruct(&req))
}
