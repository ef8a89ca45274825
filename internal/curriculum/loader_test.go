package curriculum

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c, err := Default()
	require.NoError(t, err, "embedded content must load")

	units := c.Units()
	require.NotEmpty(t, units)
	assert.Equal(t, 1, units[0].Number)

	// The first node of the embedded curriculum is the entry point and
	// must carry questions.
	first := units[0].Sections[0].Nodes[0]
	qs, err := c.Questions(first.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, qs)
	assert.Greater(t, first.XPReward, 0)
}

func TestLoadBytes_Valid(t *testing.T) {
	data := []byte(`{
		"version": 1,
		"units": [{
			"number": 1,
			"title": "Unit 1",
			"sections": [{
				"id": "s1",
				"title": "Basics",
				"nodes": [{
					"id": "n1",
					"title": "Hello",
					"xp_reward": 10,
					"questions": [{
						"id": "q1",
						"sentence": "Aku suka lebah",
						"instruction": "Translate to English",
						"available_words": ["I", "love", "bees"],
						"correct_answer": ["I", "love", "bees"]
					}]
				}]
			}]
		}]
	}`)

	c, err := LoadBytes(data)
	require.NoError(t, err)

	n, err := c.Node("n1")
	require.NoError(t, err)
	assert.Equal(t, "Hello", n.Title)
	assert.Equal(t, 10, n.XPReward)
	require.Len(t, n.Questions, 1)
	assert.Equal(t, []string{"I", "love", "bees"}, n.Questions[0].CorrectAnswer)

	secID, err := c.SectionID("n1")
	require.NoError(t, err)
	assert.Equal(t, "s1", secID)
}

func TestLoadBytes_SchemaRejectsMissingFields(t *testing.T) {
	data := []byte(`{
		"version": 1,
		"units": [{
			"number": 1,
			"title": "Unit 1",
			"sections": [{
				"id": "s1",
				"title": "Basics",
				"nodes": [{
					"id": "n1",
					"title": "Hello",
					"xp_reward": 10,
					"questions": [{"id": "q1", "sentence": "x"}]
				}]
			}]
		}]
	}`)

	_, err := LoadBytes(data)
	assert.ErrorContains(t, err, "schema validation")
}

func TestLoadBytes_RejectsMalformedJSON(t *testing.T) {
	_, err := LoadBytes([]byte(`{"version": 1,`))
	assert.ErrorContains(t, err, "invalid content JSON")
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile("does/not/exist.json")
	assert.Error(t, err)
}
