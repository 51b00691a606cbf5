package transcript

import (
	"archive/zip"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleTranscript = `Provo River Water Treatment Turnover

Mike Scott  0:13
Alright, let's get started. Project name: Provo River Water Treatment.

Dwight Schrute - 0:45
The customer is the city water authority.

Mike Scott  1:02
Start date is March 3rd.

Dwight Schrute - 1:30
We need the glazing crew on site by April.

Mike Scott  2:15
Any permit concerns?

Pam Beesly  2:40
Permits were filed last week.

Dwight Schrute - 3:05
Lead times on curtain wall are twelve weeks.
`

func TestIsTranscriptFile(t *testing.T) {
	assert.True(t, IsTranscriptFile("meeting.txt"))
	assert.True(t, IsTranscriptFile("Meeting.DOCX"))
	assert.False(t, IsTranscriptFile("meeting.pdf"))
	assert.False(t, IsTranscriptFile("meeting"))
}

func TestLoadTxt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "meeting.txt")
	require.NoError(t, os.WriteFile(path, []byte("  some transcript text \n"), 0644))

	text, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "some transcript text", text)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.txt"))
	assert.Error(t, err)
}

func TestLoadUnsupportedFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "meeting.pdf")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadDocx(t *testing.T) {
	path := filepath.Join(t.TempDir(), "meeting.docx")
	writeTestDocx(t, path, `<?xml version="1.0"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>First paragraph</w:t></w:r></w:p>
    <w:p><w:r><w:t> split </w:t></w:r><w:r><w:t>run</w:t></w:r></w:p>
    <w:p><w:r><w:t>   </w:t></w:r></w:p>
    <w:p><w:r><w:t>Last paragraph</w:t></w:r></w:p>
  </w:body>
</w:document>`)

	text, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "First paragraph\n\nsplit run\n\nLast paragraph", text)
}

func writeTestDocx(t *testing.T, path, documentXML string) {
	t.Helper()

	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	zw := zip.NewWriter(f)
	w, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(documentXML))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
}

func TestLoadQuestions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "questions.txt")
	require.NoError(t, os.WriteFile(path, []byte("What is the scope?\n\n  Who is the customer?  \n"), 0644))

	questions, err := LoadQuestions(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"What is the scope?", "Who is the customer?"}, questions)
}

func TestCountTurns(t *testing.T) {
	turns := CountTurns(sampleTranscript)
	require.Len(t, turns, 3)

	assert.Equal(t, SpeakerTurns{Name: "Dwight Schrute", Turns: 3}, turns[0])
	assert.Equal(t, SpeakerTurns{Name: "Mike Scott", Turns: 3}, turns[1])
	assert.Equal(t, SpeakerTurns{Name: "Pam Beesly", Turns: 1}, turns[2])
}

func TestConfirmedSpeakers(t *testing.T) {
	// Pam only has one turn, below the confirmation threshold
	speakers := ConfirmedSpeakers(sampleTranscript)
	assert.Equal(t, []string{"Dwight Schrute", "Mike Scott"}, speakers)
}

func TestConfirmedSpeakersCap(t *testing.T) {
	var b strings.Builder
	names := []string{"Alpha A", "Bravo B", "Charlie C", "Delta D", "Echo E", "Foxtrot F",
		"Golf G", "Hotel H", "India I", "Juliet J", "Kilo K", "Lima L"}
	for _, name := range names {
		for range 3 {
			b.WriteString(name + "  0:10\nsome words here\n")
		}
	}

	assert.Len(t, ConfirmedSpeakers(b.String()), 10)
}

func TestExtractProjectName(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"project name line", "Project Name: Provo River Water Treatment\nmore text", "Provo River Water Treatment"},
		{"job line", "Job: Riverside Tower\n", "Riverside Tower"},
		{"strips article and suffix", "Project: the Riverside Tower project\n", "Riverside Tower"},
		{"no match", "an unrelated document", UnknownProject},
		{"too short", "Project: ab\n", UnknownProject},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractProjectName(tt.text))
		})
	}
}
