package server

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/geometry"
	"github.com/df07/go-recursive-raytracer/pkg/material"
	"github.com/df07/go-recursive-raytracer/pkg/renderer"
	"github.com/df07/go-recursive-raytracer/pkg/scene"
)

// InspectResponse represents the JSON response for object inspection
type InspectResponse struct {
	Hit          bool                   `json:"hit"`
	MaterialType string                 `json:"materialType,omitempty"`
	GeometryType string                 `json:"geometryType,omitempty"`
	Point        [3]float64             `json:"point"`
	Normal       [3]float64             `json:"normal"`
	Distance     float64                `json:"distance"`
	FrontFace    bool                   `json:"frontFace"` // Ray arrived against the outward normal
	Properties   map[string]interface{} `json:"properties,omitempty"`
}

// InspectResult contains information about the object hit by an inspection ray
type InspectResult struct {
	Hit       bool
	Ray       core.Ray
	HitRecord material.HitRecord
	Shape     geometry.Shape // The shape that was hit
}

// inspectPixel casts a ray through the center of a pixel and returns the first object hit
func inspectPixel(sceneObj *scene.Scene, pixelX, pixelY int) (InspectResult, error) {
	camera := sceneObj.NewCamera()
	ray, err := camera.CenterRay(pixelX, pixelY)
	if err != nil {
		return InspectResult{}, err
	}

	// Same lower bound the renderer uses for primary rays
	shape, hit, isHit := sceneObj.HitShape(ray, core.Forward(renderer.ShadowAcneBias))
	if !isHit {
		return InspectResult{Ray: ray}, nil
	}
	return InspectResult{Hit: true, Ray: ray, HitRecord: hit, Shape: shape}, nil
}

// extractMaterialInfo describes a material by kind
func extractMaterialInfo(mat material.Material) map[string]interface{} {
	properties := make(map[string]interface{})

	switch mat.Kind {
	case material.KindLambertian:
		properties["albedo"] = colorArray(mat.Albedo)
		properties["color"] = hexColor(mat.Albedo)
	case material.KindMetal:
		properties["albedo"] = colorArray(mat.Albedo)
		properties["color"] = hexColor(mat.Albedo)
		properties["fuzz"] = mat.Fuzz
	case material.KindDielectric:
		properties["refractiveIndex"] = mat.RefractiveIndex
		properties["color"] = "#ffffff" // Clear glass
	}

	return properties
}

// extractGeometryInfo describes a shape by kind
func extractGeometryInfo(shape geometry.Shape) map[string]interface{} {
	properties := make(map[string]interface{})

	switch shape.Kind {
	case geometry.KindSphere:
		properties["center"] = vecArray(shape.Sphere.Center.Vec3())
		properties["radius"] = shape.Sphere.Radius
		properties["hollow"] = shape.Sphere.Radius < 0
	}

	return properties
}

func vecArray(v core.Vec3) [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

func colorArray(c core.Color) [3]float64 {
	return [3]float64{c.R(), c.G(), c.B()}
}

func hexColor(c core.Color) string {
	c = c.Clamp(0, 1)
	return fmt.Sprintf("#%02x%02x%02x", int(c.R()*255), int(c.G()*255), int(c.B()*255))
}

// handleInspect handles ray casting inspection requests
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	req, sceneObj, err := s.parseRenderRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid scene parameters: "+err.Error())
		return
	}

	pixelX, err := strconv.Atoi(r.URL.Query().Get("x"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid x coordinate")
		return
	}
	pixelY, err := strconv.Atoi(r.URL.Query().Get("y"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid y coordinate")
		return
	}
	if pixelX < 0 || pixelX >= req.Width || pixelY < 0 || pixelY >= req.Height {
		writeError(w, http.StatusBadRequest, "Pixel coordinates out of bounds")
		return
	}

	result, err := inspectPixel(sceneObj, pixelX, pixelY)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if !result.Hit {
		writeJSON(w, http.StatusOK, InspectResponse{Hit: false})
		return
	}

	hit := result.HitRecord
	writeJSON(w, http.StatusOK, InspectResponse{
		Hit:          true,
		MaterialType: hit.Material.Kind.String(),
		GeometryType: result.Shape.Kind.String(),
		Point:        vecArray(hit.Point.Vec3()),
		Normal:       vecArray(hit.Normal),
		Distance:     hit.T * result.Ray.Direction.Length(),
		FrontFace:    result.Ray.Direction.Dot(hit.Normal) <= 0,
		Properties: map[string]interface{}{
			"material": extractMaterialInfo(hit.Material),
			"geometry": extractGeometryInfo(result.Shape),
		},
	})
}
