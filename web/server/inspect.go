package server

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/integrator"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// InspectResponse represents the JSON response for object inspection
type InspectResponse struct {
	Hit            bool                   `json:"hit"`
	PrimitiveIndex int                    `json:"primitiveIndex"`
	GeometryType   string                 `json:"geometryType"`
	Point          [3]float64             `json:"point"`
	Normal         [3]float64             `json:"normal"`
	Distance       float64                `json:"distance"`
	FrontFace      bool                   `json:"frontFace"`
	Color          [3]float64             `json:"color"`
	Properties     map[string]interface{} `json:"properties"`
}

func vecArray(v core.Vec3) [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

func hexColor(v core.Vec3) string {
	c := v.Clamp(0, 1)
	return fmt.Sprintf("#%02x%02x%02x", int(c.X*255), int(c.Y*255), int(c.Z*255))
}

// extractMaterialInfo extracts the Phong coefficients of a material
func (s *Server) extractMaterialInfo(mat *material.Material) map[string]interface{} {
	return map[string]interface{}{
		"albedo":       vecArray(mat.Color),
		"color":        hexColor(mat.Color),
		"diffuse":      mat.Diffuse,
		"specular":     mat.Specular,
		"shininess":    mat.Shininess,
		"reflectivity": mat.Reflectivity,
	}
}

// extractGeometryInfo extracts detailed geometry information
func (s *Server) extractGeometryInfo(prim *geometry.Primitive) map[string]interface{} {
	properties := make(map[string]interface{})

	switch prim.Kind {
	case geometry.KindSphere:
		properties["center"] = vecArray(prim.Sphere.Center)
		properties["radius"] = prim.Sphere.Radius
	case geometry.KindPlane:
		properties["point"] = vecArray(prim.Plane.Point)
		properties["normal"] = vecArray(prim.Plane.Normal)
	case geometry.KindQuad:
		properties["corner"] = vecArray(prim.Quad.Corner)
		properties["u"] = vecArray(prim.Quad.U)
		properties["v"] = vecArray(prim.Quad.V)
		properties["normal"] = vecArray(prim.Quad.Normal)
	case geometry.KindTriangle:
		properties["v0"] = vecArray(prim.Triangle.V0)
		properties["v1"] = vecArray(prim.Triangle.V1)
		properties["v2"] = vecArray(prim.Triangle.V2)
		properties["normal"] = vecArray(prim.Triangle.Normal)
	}
	return properties
}

// handleInspect handles ray casting inspection requests
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")

	inspectReq, err := s.parseRenderRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid scene parameters: "+err.Error())
		return
	}

	// Parse pixel coordinates
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

	sceneObj, err := scene.Create(inspectReq.Scene, inspectReq.Width, inspectReq.Height)
	if err != nil {
		writeError(w, statusForError(err), err.Error())
		return
	}

	// Validate pixel coordinates
	if pixelX < 0 || pixelX >= sceneObj.CameraConfig.Width || pixelY < 0 || pixelY >= sceneObj.CameraConfig.Height {
		writeError(w, http.StatusBadRequest, "Pixel coordinates out of bounds")
		return
	}

	result, err := renderer.Inspect(sceneObj, integrator.Config{
		MaxDepth:     inspectReq.MaxDepth,
		FadeDistance: inspectReq.Fade,
	}, pixelX, pixelY)
	if err != nil {
		writeError(w, statusForError(err), err.Error())
		return
	}

	if !result.Hit {
		writeJSON(w, http.StatusOK, InspectResponse{Hit: false, PrimitiveIndex: -1, Color: vecArray(result.Color)})
		return
	}

	writeJSON(w, http.StatusOK, InspectResponse{
		Hit:            true,
		PrimitiveIndex: result.Record.Index,
		GeometryType:   result.Primitive.Kind.String(),
		Point:          vecArray(result.Record.Point),
		Normal:         vecArray(result.Record.Normal),
		Distance:       result.Record.T,
		FrontFace:      result.Record.FrontFace,
		Color:          vecArray(result.Color),
		Properties: map[string]interface{}{
			"material": s.extractMaterialInfo(result.Record.Material),
			"geometry": s.extractGeometryInfo(result.Primitive),
		},
	})
}
