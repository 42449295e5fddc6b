package sprite3d

import (
	"bytes"
	"fmt"
	"math"
	"path/filepath"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

const uvMargin = 0.001

const (
	sphereSegments = 32
	sphereRings    = 16
)

type geometry struct {
	positions [][3]float32
	normals   [][3]float32
	texCoords [][2]float32
	indices   []uint32
}

// buildGeometry expands a primitive description into triangles with the
// scale and position baked into the vertex data.
func buildGeometry(prim *MeshPrimitive) *geometry {
	var g *geometry
	switch prim.Shape {
	case SHAPE_PLANE:
		g = planeGeometry()
	case SHAPE_CUBOID:
		g = cuboidGeometry()
	case SHAPE_ELLIPSOID:
		g = sphereGeometry(sphereSegments, sphereRings)
	default:
		return nil
	}
	sx := float32(prim.Scale[0])
	sy := float32(prim.Scale[1])
	sz := float32(prim.Scale[2])
	px := float32(prim.Position[0])
	py := float32(prim.Position[1])
	pz := float32(prim.Position[2])
	for i := range g.positions {
		g.positions[i][0] = g.positions[i][0]*sx + px
		g.positions[i][1] = g.positions[i][1]*sy + py
		g.positions[i][2] = g.positions[i][2]*sz + pz
	}
	for i := range g.normals {
		n := [3]float32{g.normals[i][0] / sx, g.normals[i][1] / sy, g.normals[i][2] / sz}
		l := float32(math.Sqrt(float64(n[0]*n[0] + n[1]*n[1] + n[2]*n[2])))
		if l > 0 {
			n[0] /= l
			n[1] /= l
			n[2] /= l
		}
		g.normals[i] = n
	}
	return g
}

// planeGeometry spans X and Z over [-1, 1], facing +Y. The image top
// maps to +Z.
func planeGeometry() *geometry {
	return &geometry{
		positions: [][3]float32{
			{-1, 0, -1},
			{-1, 0, 1},
			{1, 0, 1},
			{1, 0, -1},
		},
		normals: [][3]float32{
			{0, 1, 0}, {0, 1, 0}, {0, 1, 0}, {0, 1, 0},
		},
		texCoords: [][2]float32{
			{0, 1}, {0, 0}, {1, 0}, {1, 1},
		},
		indices: []uint32{0, 1, 2, 0, 2, 3},
	}
}

type cubeFace struct {
	origin [3]float32
	uAxis  [3]float32
	vAxis  [3]float32
	normal [3]float32
}

var cubeFaces = []cubeFace{
	{[3]float32{1, -1, -1}, [3]float32{0, 2, 0}, [3]float32{0, 0, 2}, [3]float32{1, 0, 0}},
	{[3]float32{-1, 1, -1}, [3]float32{0, -2, 0}, [3]float32{0, 0, 2}, [3]float32{-1, 0, 0}},
	{[3]float32{1, 1, -1}, [3]float32{-2, 0, 0}, [3]float32{0, 0, 2}, [3]float32{0, 1, 0}},
	{[3]float32{-1, -1, -1}, [3]float32{2, 0, 0}, [3]float32{0, 0, 2}, [3]float32{0, -1, 0}},
	{[3]float32{-1, -1, 1}, [3]float32{2, 0, 0}, [3]float32{0, 2, 0}, [3]float32{0, 0, 1}},
	{[3]float32{1, -1, -1}, [3]float32{-2, 0, 0}, [3]float32{0, 2, 0}, [3]float32{0, 0, -1}},
}

// cuboidGeometry maps the full frame onto every face, inset by the
// unwrap margin.
func cuboidGeometry() *geometry {
	g := &geometry{}
	lo := float32(uvMargin)
	hi := float32(1 - uvMargin)
	for _, f := range cubeFaces {
		base := uint32(len(g.positions))
		o, u, v := f.origin, f.uAxis, f.vAxis
		g.positions = append(g.positions,
			o,
			[3]float32{o[0] + u[0], o[1] + u[1], o[2] + u[2]},
			[3]float32{o[0] + u[0] + v[0], o[1] + u[1] + v[1], o[2] + u[2] + v[2]},
			[3]float32{o[0] + v[0], o[1] + v[1], o[2] + v[2]},
		)
		g.normals = append(g.normals, f.normal, f.normal, f.normal, f.normal)
		g.texCoords = append(g.texCoords,
			[2]float32{lo, hi},
			[2]float32{hi, hi},
			[2]float32{hi, lo},
			[2]float32{lo, lo},
		)
		g.indices = append(g.indices, base, base+1, base+2, base, base+2, base+3)
	}
	return g
}

// sphereGeometry builds a UV sphere of radius 0.5 with the poles on Z.
func sphereGeometry(segments, rings int) *geometry {
	g := &geometry{}
	const r = 0.5
	for y := 0; y <= rings; y++ {
		theta := math.Pi * float64(y) / float64(rings)
		st, ct := math.Sin(theta), math.Cos(theta)
		for x := 0; x <= segments; x++ {
			phi := 2 * math.Pi * float64(x) / float64(segments)
			sp, cp := math.Sin(phi), math.Cos(phi)
			nx := float32(st * cp)
			ny := float32(st * sp)
			nz := float32(ct)
			g.positions = append(g.positions, [3]float32{nx * r, ny * r, nz * r})
			g.normals = append(g.normals, [3]float32{nx, ny, nz})
			g.texCoords = append(g.texCoords, [2]float32{
				float32(float64(x) / float64(segments)),
				float32(float64(y) / float64(rings)),
			})
		}
	}
	stride := uint32(segments + 1)
	for y := 0; y < rings; y++ {
		for x := 0; x < segments; x++ {
			i0 := uint32(y)*stride + uint32(x)
			i1 := i0 + 1
			i2 := i0 + stride
			i3 := i2 + 1
			if y != 0 {
				g.indices = append(g.indices, i0, i2, i3)
			}
			if y != rings-1 {
				g.indices = append(g.indices, i0, i3, i1)
			}
		}
	}
	return g
}

// buildDocument assembles the glTF document for a scene. Sprites shared
// by several materials are embedded once.
func buildDocument(scene *Scene, flags ExportFlags) (*gltf.Document, error) {
	doc := gltf.NewDocument()
	doc.Asset.Generator = "go-sprite3d"

	texCache := map[*Sprite]uint32{}
	for _, pair := range scene.Pairs {
		geom := buildGeometry(&pair.Prim)
		if geom == nil {
			return nil, fmt.Errorf("%w: unknown shape %q", ErrExport, pair.Prim.Shape)
		}
		attrs := map[string]uint32{
			gltf.POSITION: modeler.WritePosition(doc, geom.positions),
		}
		if flags.Normals {
			attrs[gltf.NORMAL] = modeler.WriteNormal(doc, geom.normals)
		}
		if flags.TexCoords {
			attrs[gltf.TEXCOORD_0] = modeler.WriteTextureCoord(doc, geom.texCoords)
		}
		prim := &gltf.Primitive{
			Attributes: attrs,
			Indices:    gltf.Index(modeler.WriteIndices(doc, geom.indices)),
		}
		if flags.Materials {
			mtlIdx, err := writeMaterial(doc, &pair.Mtl, texCache)
			if err != nil {
				return nil, err
			}
			prim.Material = gltf.Index(mtlIdx)
		}
		doc.Meshes = append(doc.Meshes, &gltf.Mesh{
			Name:       pair.Prim.Name,
			Primitives: []*gltf.Primitive{prim},
		})
		doc.Nodes = append(doc.Nodes, &gltf.Node{
			Name: pair.Prim.Name,
			Mesh: gltf.Index(uint32(len(doc.Meshes) - 1)),
		})
		doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, uint32(len(doc.Nodes)-1))
	}
	return doc, nil
}

func writeMaterial(doc *gltf.Document, m *MaterialSpec, texCache map[*Sprite]uint32) (uint32, error) {
	pbr := &gltf.PBRMetallicRoughness{
		BaseColorFactor: &[4]float32{
			m.BaseColorFactor[0], m.BaseColorFactor[1],
			m.BaseColorFactor[2], m.BaseColorFactor[3],
		},
		MetallicFactor:  gltf.Float(0),
		RoughnessFactor: gltf.Float(1),
	}
	mtl := &gltf.Material{Name: m.Name, PBRMetallicRoughness: pbr}
	if m.Texture != nil {
		texIdx, err := writeTexture(doc, m.Texture, texCache)
		if err != nil {
			return 0, err
		}
		pbr.BaseColorTexture = &gltf.TextureInfo{Index: texIdx}
		if m.EmissionStrength > 0 {
			mtl.EmissiveTexture = &gltf.TextureInfo{Index: texIdx}
			s := m.EmissionStrength
			mtl.EmissiveFactor = [3]float32{s, s, s}
		}
	}
	if m.BlendMode == BLEND_ALPHA {
		mtl.AlphaMode = gltf.AlphaBlend
	} else {
		mtl.AlphaMode = gltf.AlphaOpaque
	}
	doc.Materials = append(doc.Materials, mtl)
	return uint32(len(doc.Materials) - 1), nil
}

func writeTexture(doc *gltf.Document, sp *Sprite, texCache map[*Sprite]uint32) (uint32, error) {
	if idx, ok := texCache[sp]; ok {
		return idx, nil
	}
	imgIdx, err := modeler.WriteImage(doc, filepath.Base(sp.Path), sp.MimeType, bytes.NewReader(sp.Data))
	if err != nil {
		return 0, fmt.Errorf("%w: embed %s: %v", ErrExport, sp.Path, err)
	}
	doc.Textures = append(doc.Textures, &gltf.Texture{Source: gltf.Index(imgIdx)})
	idx := uint32(len(doc.Textures) - 1)
	texCache[sp] = idx
	return idx, nil
}
