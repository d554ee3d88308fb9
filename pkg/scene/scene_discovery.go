package scene

import (
	"fmt"
	"sort"
	"strings"
)

// SceneInfo represents a built-in scene with its metadata
type SceneInfo struct {
	ID          string `json:"id"`          // Unique identifier, accepted by Create
	Name        string `json:"name"`        // Scene name
	Description string `json:"description"` // Optional description
	Group       string `json:"group"`       // Grouping category
	Width       int    `json:"width"`       // Default image width
	Height      int    `json:"height"`      // Default image height
	Samples     int    `json:"samples"`     // Default samples per pixel
	MaxDepth    int    `json:"maxDepth"`    // Default ray bounce depth
	Primitives  int    `json:"primitives"`  // Number of spheres
}

// SceneGroup represents a group of related scenes
type SceneGroup struct {
	Name   string      `json:"name"`
	Scenes []SceneInfo `json:"scenes"`
}

// ScenesResponse represents the complete response for /api/scenes
type ScenesResponse struct {
	Groups []SceneGroup `json:"groups"`
}

const builtInGroup = "Built-in Scenes"

type registration struct {
	id          string
	description string
	group       string
	create      func() *Scene
}

// registry lists the built-in scenes in display order
var registry = []registration{
	{"default", "Diffuse, hollow glass and metal spheres on a ground sphere", builtInGroup,
		func() *Scene { return NewDefaultScene() }},
	{"diffuse", "Single diffuse sphere lit by the sky", builtInGroup,
		func() *Scene { return NewDiffuseScene() }},
	{"spheregrid", "Grid of rainbow-colored metallic spheres", builtInGroup,
		func() *Scene { return NewSphereGridScene() }},
	{"ring", "Glass and mirror spheres inside a ring of small diffuse spheres", "Showcase",
		func() *Scene { return NewRingScene() }},
	{"focus", "Default scene through a wide-aperture lens", "Showcase",
		func() *Scene { return NewFocusScene() }},
}

// Create builds the built-in scene with the given ID
func Create(id string) (*Scene, error) {
	for _, r := range registry {
		if r.id == id {
			return r.create(), nil
		}
	}
	return nil, fmt.Errorf("unknown scene %q (available: %s)", id, strings.Join(IDs(), ", "))
}

// IDs returns the IDs of all built-in scenes in display order
func IDs() []string {
	ids := make([]string, len(registry))
	for i, r := range registry {
		ids[i] = r.id
	}
	return ids
}

// List returns metadata for every built-in scene in display order
func List() []SceneInfo {
	scenes := make([]SceneInfo, 0, len(registry))
	for _, r := range registry {
		s := r.create()
		scenes = append(scenes, SceneInfo{
			ID:          r.id,
			Name:        titleCase(r.id),
			Description: r.description,
			Group:       r.group,
			Width:       s.CameraConfig.Width,
			Height:      s.CameraConfig.Height,
			Samples:     s.SamplingConfig.SamplesPerPixel,
			MaxDepth:    s.SamplingConfig.MaxDepth,
			Primitives:  s.GetPrimitiveCount(),
		})
	}
	return scenes
}

// ListAllScenes returns the built-in scenes grouped by category
func ListAllScenes() ScenesResponse {
	var response ScenesResponse

	groupMap := make(map[string][]SceneInfo)
	for _, scene := range List() {
		groupMap[scene.Group] = append(groupMap[scene.Group], scene)
	}

	// Built-in first, then alphabetical
	var groupNames []string
	for groupName := range groupMap {
		if groupName != builtInGroup {
			groupNames = append(groupNames, groupName)
		}
	}
	sort.Strings(groupNames)

	if scenes, exists := groupMap[builtInGroup]; exists {
		response.Groups = append(response.Groups, SceneGroup{Name: builtInGroup, Scenes: scenes})
	}
	for _, groupName := range groupNames {
		response.Groups = append(response.Groups, SceneGroup{Name: groupName, Scenes: groupMap[groupName]})
	}

	return response
}

// titleCase converts an identifier-style string to title case
// e.g., "sphere-grid" -> "Sphere Grid"
func titleCase(s string) string {
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	words := strings.Fields(s)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
	}

	return strings.Join(words, " ")
}
