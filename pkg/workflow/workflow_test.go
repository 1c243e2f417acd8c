package workflow

import (
	"context"
	"errors"
	"image"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	somegen "github.com/mediatalo/somegen"
	"github.com/mediatalo/somegen/pkg/brand"
	"github.com/mediatalo/somegen/pkg/compose"
	"github.com/mediatalo/somegen/pkg/textgen"
)

type stubLogos struct{}

func (stubLogos) Load(string) (image.Image, error) {
	img := image.NewNRGBA(image.Rect(0, 0, 80, 40))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = 230, 230, 230, 255
	}
	return img, nil
}

func testWorkflow(t *testing.T) (*Workflow, string) {
	t.Helper()
	dir := t.TempDir()
	cfg := Config{
		OutputDir:     dir,
		FontDir:       filepath.Join(dir, "fonts"),
		MaxConcurrent: 2,
		TaskTimeout:   30 * time.Second,
		FFmpegPath:    filepath.Join(dir, "no-such-ffmpeg"),
		VideoQuality:  90,
	}
	return New(cfg, nil, WithLogoLoader(stubLogos{})), dir
}

func stillTask() Task {
	return Task{
		BrandID:     "Kaleva",
		Platform:    "instagram",
		ContentType: brand.ContentPost,
		Layout:      brand.LayoutSquare,
		Version:     1,
		Heading:     "Aluevaltuusto kokoontuu ensi viikolla",
		BannerMode:  compose.BannerCustomText,
	}
}

func TestGenerateContentWritesStill(t *testing.T) {
	w, dir := testWorkflow(t)

	res, err := w.GenerateContent(context.Background(), stillTask())
	require.NoError(t, err)
	assert.NotEmpty(t, res.TaskID)
	assert.Equal(t, dir, filepath.Dir(res.OutputPath))
	// Template v1 is photo-backed, so the still is a JPEG.
	assert.Equal(t, ".jpg", filepath.Ext(res.OutputPath))
	assert.FileExists(t, res.OutputPath)
}

func TestGenerateContentSolidTemplateWritesPNG(t *testing.T) {
	w, _ := testWorkflow(t)

	task := stillTask()
	task.Version = 4
	res, err := w.GenerateContent(context.Background(), task)
	require.NoError(t, err)
	assert.Equal(t, ".png", filepath.Ext(res.OutputPath))
	assert.FileExists(t, res.OutputPath)
}

func TestGenerateContentUnknownBrand(t *testing.T) {
	w, dir := testWorkflow(t)

	task := stillTask()
	task.BrandID = "Etelä-Suomen Sanomat"
	_, err := w.GenerateContent(context.Background(), task)
	require.Error(t, err)
	assert.True(t, somegen.IsConfig(err))
	assertNoOutput(t, dir)
}

func TestGenerateContentUnknownCanvas(t *testing.T) {
	w, dir := testWorkflow(t)

	task := stillTask()
	task.Platform = "tiktok"
	_, err := w.GenerateContent(context.Background(), task)
	require.Error(t, err)
	assert.True(t, somegen.IsConfig(err))
	assertNoOutput(t, dir)
}

func TestGenerateContentUnknownVersion(t *testing.T) {
	w, dir := testWorkflow(t)

	task := stillTask()
	task.Version = 7
	_, err := w.GenerateContent(context.Background(), task)
	require.Error(t, err)
	assert.True(t, somegen.IsConfig(err))
	assertNoOutput(t, dir)
}

func TestGenerateContentAnimatedFallback(t *testing.T) {
	w, dir := testWorkflow(t)

	task := stillTask()
	task.ContentType = brand.ContentStory
	task.Layout = brand.LayoutPortrait
	task.Version = 2
	task.Animate = true
	task.DurationSec = 0.2

	_, err := w.GenerateContent(context.Background(), task)
	require.NoError(t, err)

	// The bogus ffmpeg path forces the MJPEG fallback, which writes an
	// .avi next to the requested .mp4 name.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	found := false
	for _, e := range entries {
		if filepath.Ext(e.Name()) == ".avi" {
			found = true
		}
	}
	assert.True(t, found, "expected an .avi artifact in %s", dir)
}

func TestGenerateBatchKeepsOrder(t *testing.T) {
	w, _ := testWorkflow(t)

	tasks := []Task{stillTask(), stillTask(), stillTask()}
	tasks[1].Version = 2
	tasks[2].Version = 3

	results, err := w.GenerateBatch(context.Background(), tasks)
	require.NoError(t, err)
	require.Len(t, results, 3)
	for i, res := range results {
		assert.FileExists(t, res.OutputPath, "task %d", i)
	}
}

func TestGenerateBatchFailsFast(t *testing.T) {
	w, _ := testWorkflow(t)

	tasks := []Task{stillTask(), stillTask()}
	tasks[1].BrandID = "Nope"

	_, err := w.GenerateBatch(context.Background(), tasks)
	require.Error(t, err)
	assert.True(t, somegen.IsConfig(err))
}

func TestSuggestTextWithoutBackend(t *testing.T) {
	w, _ := testWorkflow(t)

	_, err := w.SuggestText(context.Background(), textgen.SuggestRequest{ArticleText: "x"})
	require.Error(t, err)
	assert.False(t, errors.Is(err, context.Canceled))
}

func TestLoadBackgroundUnreadablePathDegrades(t *testing.T) {
	w, _ := testWorkflow(t)

	task := stillTask()
	task.ImagePath = filepath.Join(t.TempDir(), "no-photo.jpg")
	res, err := w.GenerateContent(context.Background(), task)
	require.NoError(t, err)
	assert.FileExists(t, res.OutputPath)
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "lapin_kansa", slugify("Lapin Kansa"))
	assert.Equal(t, "pyhajokiseutu", slugify("Pyhäjokiseutu"))
}

func assertNoOutput(t *testing.T, dir string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, e := range entries {
		if !e.IsDir() {
			t.Fatalf("unexpected output file %s", e.Name())
		}
	}
}
