package loaders

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/White-Link/PathTracer/pkg/core"
	"github.com/White-Link/PathTracer/pkg/geometry"
	"github.com/White-Link/PathTracer/pkg/material"
)

// OBJData contains the raw data loaded from a Wavefront OBJ file.
// Faces index into the vertex attributes; triangles are stored as three
// consecutive index triplets (position, texcoord, normal), with -1 marking
// an absent attribute.
type OBJData struct {
	Vertices  []core.Vec3
	Normals   []core.Vec3
	TexCoords []core.Vec2
	Faces     []FaceVertex
}

// FaceVertex addresses the attributes of one triangle corner
type FaceVertex struct {
	Vertex   int
	TexCoord int // -1 if absent
	Normal   int // -1 if absent
}

// LoadOBJ parses a Wavefront OBJ file. Polygonal faces are triangulated
// as fans; unsupported statements are skipped.
func LoadOBJ(filename string) (*OBJData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open OBJ file: %w", err)
	}
	defer file.Close()

	data := &OBJData{}
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)

		switch fields[0] {
		case "v":
			v, err := parseVec3(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("line %d: invalid vertex: %w", lineNo, err)
			}
			data.Vertices = append(data.Vertices, v)
		case "vn":
			n, err := parseVec3(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("line %d: invalid normal: %w", lineNo, err)
			}
			data.Normals = append(data.Normals, n)
		case "vt":
			if len(fields) < 3 {
				return nil, fmt.Errorf("line %d: invalid texture coordinate", lineNo)
			}
			u, err1 := strconv.ParseFloat(fields[1], 64)
			v, err2 := strconv.ParseFloat(fields[2], 64)
			if err1 != nil || err2 != nil {
				return nil, fmt.Errorf("line %d: invalid texture coordinate", lineNo)
			}
			data.TexCoords = append(data.TexCoords, core.NewVec2(u, v))
		case "f":
			if err := data.parseFace(fields[1:]); err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
		default:
			// Groups, materials and smoothing statements are ignored
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read OBJ file: %w", err)
	}
	if len(data.Faces) == 0 {
		return nil, fmt.Errorf("OBJ file %s contains no faces", filename)
	}
	return data, nil
}

func parseVec3(fields []string) (core.Vec3, error) {
	if len(fields) < 3 {
		return core.Vec3{}, fmt.Errorf("expected 3 components, got %d", len(fields))
	}
	x, err1 := strconv.ParseFloat(fields[0], 64)
	y, err2 := strconv.ParseFloat(fields[1], 64)
	z, err3 := strconv.ParseFloat(fields[2], 64)
	if err1 != nil || err2 != nil || err3 != nil {
		return core.Vec3{}, fmt.Errorf("non-numeric component")
	}
	return core.NewVec3(x, y, z), nil
}

// parseFace triangulates a face statement as a fan around its first corner
func (d *OBJData) parseFace(corners []string) error {
	if len(corners) < 3 {
		return fmt.Errorf("face with %d corners", len(corners))
	}
	parsed := make([]FaceVertex, len(corners))
	for i, corner := range corners {
		fv, err := d.parseFaceVertex(corner)
		if err != nil {
			return err
		}
		parsed[i] = fv
	}
	for i := 1; i+1 < len(parsed); i++ {
		d.Faces = append(d.Faces, parsed[0], parsed[i], parsed[i+1])
	}
	return nil
}

// parseFaceVertex parses the v, v/vt, v//vn and v/vt/vn index forms.
// Indices are 1-based; negative values count back from the current end of
// the attribute list.
func (d *OBJData) parseFaceVertex(s string) (FaceVertex, error) {
	parts := strings.Split(s, "/")
	fv := FaceVertex{TexCoord: -1, Normal: -1}

	v, err := resolveIndex(parts[0], len(d.Vertices))
	if err != nil {
		return fv, fmt.Errorf("invalid vertex index %q: %w", s, err)
	}
	fv.Vertex = v

	if len(parts) > 1 && parts[1] != "" {
		vt, err := resolveIndex(parts[1], len(d.TexCoords))
		if err != nil {
			return fv, fmt.Errorf("invalid texture index %q: %w", s, err)
		}
		fv.TexCoord = vt
	}
	if len(parts) > 2 && parts[2] != "" {
		vn, err := resolveIndex(parts[2], len(d.Normals))
		if err != nil {
			return fv, fmt.Errorf("invalid normal index %q: %w", s, err)
		}
		fv.Normal = vn
	}
	return fv, nil
}

func resolveIndex(s string, count int) (int, error) {
	idx, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if idx < 0 {
		idx += count
	} else {
		idx--
	}
	if idx < 0 || idx >= count {
		return 0, fmt.Errorf("index %s out of range", s)
	}
	return idx, nil
}

// MeshOptions controls how raw OBJ data is turned into surfaces
type MeshOptions struct {
	Material       material.Material
	DiffuseTexture *material.Texture // optional, requires texture coordinates
	SpecularMap    *material.Texture // optional
}

// BuildMesh converts loaded OBJ data into triangle surfaces. Vertex
// normals missing from the file are reconstructed by area-weighted
// averaging of the adjacent face normals. Degenerate faces are dropped.
func BuildMesh(data *OBJData, opts MeshOptions) ([]geometry.Surface, error) {
	fallback := computeVertexNormals(data)

	surfaces := make([]geometry.Surface, 0, len(data.Faces)/3)
	for i := 0; i+2 < len(data.Faces); i += 3 {
		a, b, c := data.Faces[i], data.Faces[i+1], data.Faces[i+2]

		p1, p2, p3 := data.Vertices[a.Vertex], data.Vertices[b.Vertex], data.Vertices[c.Vertex]
		n1 := cornerNormal(data, fallback, a)
		n2 := cornerNormal(data, fallback, b)
		n3 := cornerNormal(data, fallback, c)

		var tri *geometry.Triangle
		if opts.DiffuseTexture != nil {
			if a.TexCoord < 0 || b.TexCoord < 0 || c.TexCoord < 0 {
				return nil, fmt.Errorf("textured mesh is missing texture coordinates on face %d", i/3)
			}
			tri = geometry.NewTexturedTriangle(p1, p2, p3, n1, n2, n3,
				data.TexCoords[a.TexCoord], data.TexCoords[b.TexCoord], data.TexCoords[c.TexCoord],
				opts.DiffuseTexture, opts.SpecularMap, opts.Material)
		} else {
			tri = geometry.NewTriangle(p1, p2, p3, n1, n2, n3, opts.Material)
		}
		if tri.Degenerate() {
			continue
		}
		surfaces = append(surfaces, tri)
	}
	if len(surfaces) == 0 {
		return nil, fmt.Errorf("mesh contains only degenerate faces")
	}
	return surfaces, nil
}

func cornerNormal(data *OBJData, fallback []core.Vec3, fv FaceVertex) core.Vec3 {
	if fv.Normal >= 0 {
		return data.Normals[fv.Normal]
	}
	return fallback[fv.Vertex]
}

// computeVertexNormals accumulates unnormalized face normals onto their
// vertices; the cross product's magnitude weighs each face by its area.
func computeVertexNormals(data *OBJData) []core.Vec3 {
	normals := make([]core.Vec3, len(data.Vertices))
	for i := 0; i+2 < len(data.Faces); i += 3 {
		a, b, c := data.Faces[i], data.Faces[i+1], data.Faces[i+2]
		p1, p2, p3 := data.Vertices[a.Vertex], data.Vertices[b.Vertex], data.Vertices[c.Vertex]
		face := p2.Subtract(p1).Cross(p3.Subtract(p1))
		normals[a.Vertex] = normals[a.Vertex].Add(face)
		normals[b.Vertex] = normals[b.Vertex].Add(face)
		normals[c.Vertex] = normals[c.Vertex].Add(face)
	}
	for i, n := range normals {
		if n.Length() > 0 {
			normals[i] = n.Normalize()
		} else {
			normals[i] = core.NewVec3(0, 0, 1)
		}
	}
	return normals
}
