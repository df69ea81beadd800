package model

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRequest() CreateEntryRequest {
	return CreateEntryRequest{
		Photo:       "data:image/png;base64,AA==",
		Description: "Trip",
		Date:        "2024-03-01",
		Link:        strPtr("https://x.com"),
	}
}

func TestCreateEntryRequest_Validate(t *testing.T) {
	require.NoError(t, validRequest().Validate())

	tests := []struct {
		name   string
		mutate func(*CreateEntryRequest)
		field  string
	}{
		{"missing photo", func(r *CreateEntryRequest) { r.Photo = "" }, "photo"},
		{"missing description", func(r *CreateEntryRequest) { r.Description = "" }, "description"},
		{"blank description", func(r *CreateEntryRequest) { r.Description = "   " }, "description"},
		{"missing date", func(r *CreateEntryRequest) { r.Date = "" }, "date"},
		{"bad date", func(r *CreateEntryRequest) { r.Date = "March first" }, "date"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)

			err := req.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestCreateEntryRequest_Normalize(t *testing.T) {
	req := CreateEntryRequest{
		Photo:       "p",
		Description: "  Trip \n",
		Date:        " 2024-03-01 ",
		Link:        strPtr("  "),
	}

	req.Normalize()

	assert.Equal(t, "Trip", req.Description)
	assert.Equal(t, "2024-03-01", req.Date)
	assert.Nil(t, req.Link)
}

func TestDraft_ToRequest(t *testing.T) {
	d := Draft{
		Photo:       "p",
		Description: "Trip",
		Date:        NewDate(2024, time.March, 1),
		Link:        strPtr(""),
	}

	req := d.ToRequest()
	assert.Equal(t, "2024-03-01", req.Date)
	assert.Nil(t, req.Link)

	req = Draft{Photo: "p"}.ToRequest()
	assert.Empty(t, req.Date)
}

func TestStoreErrorCodes(t *testing.T) {
	boom := errors.New("boom")

	tests := []struct {
		name string
		err  *EntryError
		code string
	}{
		{"create generic", NewCreateFailedError(boom), ErrCodeCreateFailed},
		{"list generic", NewListFailedError(boom), ErrCodeListFailed},
		{"delete generic", NewDeleteFailedError(boom), ErrCodeDeleteFailed},
		{"configuration wins", NewListFailedError(ErrConfiguration), ErrCodeConfiguration},
		{"connectivity wins", NewCreateFailedError(ErrConnectivity), ErrCodeConnectivity},
		{"schema wins", NewDeleteFailedError(ErrSchemaNotReady), ErrCodeSchemaNotReady},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
		})
	}

	cfgErr := NewCreateFailedError(ErrConfiguration)
	assert.Equal(t, "Database not configured. Please set DATABASE_URL environment variable.", cfgErr.Message)
	assert.ErrorIs(t, cfgErr, ErrConfiguration)

	listErr := NewListFailedError(boom)
	assert.Equal(t, "Failed to fetch entries. Check database connection.", listErr.Message)
	assert.ErrorIs(t, listErr, boom)

	valErr := NewValidationError(errors.New("photo: photo is required."))
	assert.Equal(t, ErrCodeValidation, valErr.Code)
	assert.ErrorIs(t, valErr, ErrValidation)
}
