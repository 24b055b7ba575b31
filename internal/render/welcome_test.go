package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderWelcome(t *testing.T) {
	tests := []struct {
		name      string
		info      WelcomeInfo
		termWidth int
		wantLogo  bool
		wantTexts []string
	}{
		{
			name: "full info with wide terminal",
			info: WelcomeInfo{
				Endpoint:   "http://localhost:11434/v1",
				Model:      "devstral-small-2",
				WorkDir:    "/home/user/project",
				SkillCount: 3,
				Version:    "1.0.0",
			},
			termWidth: 100,
			wantLogo:  true,
			wantTexts: []string{
				"Gem Code",
				"1.0.0",
				"devstral-small-2",
				"http://localhost:11434/v1",
				"/home/user/project",
				"3 loaded",
				"tip:", // Dynamic tip of the day
			},
		},
		{
			name: "dev version",
			info: WelcomeInfo{
				Endpoint: "https://api.openai.com/v1",
				Model:    "gpt-4o",
				WorkDir:  "/tmp",
				Version:  "dev",
			},
			termWidth: 100,
			wantLogo:  true,
			wantTexts: []string{
				"development",
				"gpt-4o",
			},
		},
		{
			name: "no skills loaded",
			info: WelcomeInfo{
				Endpoint: "https://api.openai.com/v1",
				Model:    "gpt-4o",
				WorkDir:  "/tmp",
				Version:  "1.0.0",
			},
			termWidth: 100,
			wantLogo:  true,
			wantTexts: []string{
				"none",
			},
		},
		{
			name: "narrow terminal drops the logo",
			info: WelcomeInfo{
				Endpoint: "https://api.openai.com/v1",
				Model:    "gpt-4o",
				WorkDir:  "/tmp",
				Version:  "1.0.0",
			},
			termWidth: 30,
			wantLogo:  false,
			wantTexts: []string{
				"Gem Code",
				"gpt-4o",
				"tip:",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			RenderWelcome(&buf, tt.info, tt.termWidth)

			output := buf.String()
			for _, want := range tt.wantTexts {
				assert.Contains(t, output, want)
			}

			hasLogo := strings.Contains(output, "|___/")
			assert.Equal(t, tt.wantLogo, hasLogo)
		})
	}
}

func TestGetTipOfTheDay(t *testing.T) {
	tip := getTipOfTheDay()
	assert.NotEmpty(t, tip)
	assert.Contains(t, tips, tip)

	// Stable within a single day
	assert.Equal(t, tip, getTipOfTheDay())
}
