package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const testRecordJSON = `{
	"skin_tone": "medium",
	"hair_color": "brown",
	"hair_style": "short",
	"facial_hair_style": "none",
	"facial_hair_color": "brown",
	"face_shape": "oval",
	"eye_shape": "almond",
	"eye_color": "brown",
	"eyebrow_style": "straight",
	"nose_shape": "straight",
	"mouth_expression": "neutral",
	"body_shape": "average",
	"eyewear_style": "none",
	"headwear_style": "none",
	"clothing_top_style": "tshirt",
	"clothing_top_color": "blue",
	"clothing_bottom_style": "jeans",
	"clothing_bottom_color": "black",
	"height": "average"
}`

func writeTestFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}
