package graphfile

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felixgeelhaar/coffman/internal/taskgraph"
)

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{"g.yaml", FormatYAML, false},
		{"g.YML", FormatYAML, false},
		{"dir/g.json", FormatJSON, false},
		{"g.hcl", FormatHCL, false},
		{"g.toml", "", true},
		{"g", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := FormatFromPath(tt.path)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoad(t *testing.T) {
	diamond := map[taskgraph.TaskID][]taskgraph.TaskID{
		1: {2, 3},
		2: {4},
		3: {4},
		4: {6, 7, 8},
		5: {8},
	}

	tests := []struct {
		file      string
		wantName  string
		wantTasks int
		wantSucc  map[taskgraph.TaskID][]taskgraph.TaskID
	}{
		{"diamond.yaml", "diamond-with-tail", 8, diamond},
		{"diamond.hcl", "diamond-with-tail", 8, diamond},
		{"chain.json", "chain", 3, map[taskgraph.TaskID][]taskgraph.TaskID{1: {2}, 2: {3}}},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			doc, err := Load(filepath.Join("testdata", tt.file))
			require.NoError(t, err)

			assert.Equal(t, tt.wantName, doc.Name)
			assert.Len(t, doc.Tasks, tt.wantTasks)
			assert.Equal(t, tt.wantSucc, doc.Successors)

			g := doc.Graph()
			assert.Equal(t, tt.wantTasks, g.NumberOfTasks())
		})
	}
}

func TestLoad_SameGraphAcrossFormats(t *testing.T) {
	yamlDoc, err := Load("testdata/diamond.yaml")
	require.NoError(t, err)
	hclDoc, err := Load("testdata/diamond.hcl")
	require.NoError(t, err)

	yamlFP, err := yamlDoc.Graph().Fingerprint()
	require.NoError(t, err)
	hclFP, err := hclDoc.Graph().Fingerprint()
	require.NoError(t, err)
	assert.Equal(t, yamlFP, hclFP)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load("testdata/missing.yaml")
		assert.True(t, errors.Is(err, fs.ErrNotExist))
	})

	t.Run("unknown extension", func(t *testing.T) {
		_, err := Load("testdata/graph.toml")
		assert.ErrorIs(t, err, ErrUnknownFormat)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := Load("testdata/broken.yaml")
		var parseErr *ParseError
		require.ErrorAs(t, err, &parseErr)
		assert.Equal(t, FormatYAML, parseErr.Format)
		assert.Contains(t, parseErr.Error(), "broken.yaml")
	})

	t.Run("malformed hcl", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.hcl")
		require.NoError(t, os.WriteFile(path, []byte(`task "x" {}`), 0644))

		_, err := Load(path)
		var parseErr *ParseError
		require.ErrorAs(t, err, &parseErr)
		assert.Equal(t, FormatHCL, parseErr.Format)
	})

	t.Run("unknown hcl attribute", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.hcl")
		require.NoError(t, os.WriteFile(path, []byte("task \"1\" {\n  after = [2]\n}\n"), 0644))

		_, err := Load(path)
		var parseErr *ParseError
		require.ErrorAs(t, err, &parseErr)
	})
}

func TestSaveAndLoad(t *testing.T) {
	g := taskgraph.New()
	g.AddSuccessor(1, 2)
	g.AddSuccessor(1, 3)
	g.AddSuccessor(3, 4)
	g.AddSuccessor(3, 4)
	g.AddTask()

	want, err := g.Fingerprint()
	require.NoError(t, err)

	for _, ext := range Extensions {
		t.Run(ext, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "nested", "graph"+ext)
			require.NoError(t, Save(FromGraph("sample", g), path))

			doc, err := Load(path)
			require.NoError(t, err)
			assert.Equal(t, "sample", doc.Name)

			got, err := doc.Graph().Fingerprint()
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestSave_UnknownFormat(t *testing.T) {
	err := Save(&Document{}, filepath.Join(t.TempDir(), "graph.txt"))
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestFromGraph(t *testing.T) {
	g := taskgraph.Build([]taskgraph.TaskID{1, 2, 3}, map[taskgraph.TaskID][]taskgraph.TaskID{1: {2}})

	doc := FromGraph("g", g)
	assert.Equal(t, []taskgraph.TaskID{1, 2, 3}, doc.Tasks)
	assert.Equal(t, map[taskgraph.TaskID][]taskgraph.TaskID{1: {2}}, doc.Successors)
}
