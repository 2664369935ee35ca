package contact

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/you-humble/consultancy-desk/intake/internal/model"
)

func TestBuildChatText(t *testing.T) {
	t.Parallel()

	req := model.ContactRequest{
		Name:    "Jo",
		Email:   "jo@x.io",
		Service: "IT Audit",
		Message: "Need help",
	}

	text, err := BuildChatText(req)
	require.NoError(t, err)
	assert.Equal(t,
		"Hi, I'm Jo (jo@x.io) from N/A.\nService Interested: IT Audit\nMessage: Need help",
		text,
	)

	req.Company = "Acme & Sons"
	text, err = BuildChatText(req)
	require.NoError(t, err)
	assert.Contains(t, text, "from Acme & Sons.")
}

func TestBuildChatURL(t *testing.T) {
	t.Parallel()

	got := BuildChatURL("api.whatsapp.com", "61412345678", "Hi, I'm Jo (a+b@x.io)\nok?")

	assert.Equal(t,
		"https://api.whatsapp.com/send?phone=61412345678&text=Hi%2C%20I'm%20Jo%20(a%2Bb%40x.io)%0Aok%3F",
		got,
	)

	u, err := url.Parse(got)
	require.NoError(t, err)
	assert.Equal(t, "Hi, I'm Jo (a+b@x.io)\nok?", u.Query().Get("text"))
}

func TestEncodeComponent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"a b", "a%20b"},
		{"a+b", "a%2Bb"},
		{"-_.!~*'()", "-_.!~*'()"},
		{"&=?#/", "%26%3D%3F%23%2F"},
		{"é", "%C3%A9"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, encodeComponent(tt.in))
		})
	}
}
