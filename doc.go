// Package somegen generates branded social-media graphics for a set of
// regional newspapers: it composites an uploaded photo, an AI-generated
// headline and brand-specific visual styling into platform-sized still
// images and short animated clips.
//
// The root package holds the shared error taxonomy. The work happens in
// the sub-packages:
//
//   - pkg/brand: brand profiles, color palettes and platform canvas specs
//   - pkg/compose: the canvas compositor and the layout template set
//   - pkg/motion: the animation renderer and video encoders
//   - pkg/generator: still-image artifact writers (PNG, JPEG)
//   - pkg/textgen: headline/description generation via Gemini
//   - pkg/workflow: the render orchestrator with a bounded worker pool
package somegen
