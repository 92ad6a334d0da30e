package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type location struct {
	Latitude float64 `json:"latitude" validate:"gte=-90,lte=90"`
}

type request struct {
	Email    string   `json:"email" validate:"required,email"`
	Rating   int      `json:"rating" validate:"min=1,max=5"`
	Location location `json:"location"`
}

func TestValidate(t *testing.T) {
	assert.Nil(t, Validate(request{Email: "a@example.com", Rating: 3}))

	errs := Validate(request{Email: "nope", Rating: 9, Location: location{Latitude: 120}})
	assert.Equal(t, map[string]string{
		"email":             "email",
		"rating":            "max",
		"location.latitude": "lte",
	}, errs)
}

func TestVar(t *testing.T) {
	assert.Empty(t, Var("a@example.com", "email"))
	assert.Equal(t, "email", Var("nope", "email"))
	assert.Equal(t, "min", Var("abc", "min=8"))
}
