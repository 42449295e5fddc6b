package sprite3d

import (
	"fmt"
	"os"
	"path/filepath"

	mat4d "github.com/flywave/go3d/float64/mat4"
	dvec3 "github.com/flywave/go3d/float64/vec3"
	fbx "github.com/flywave/ofbx"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// FbxToGlb re-exports an FBX scene as a single GLB file. One glTF mesh
// per FBX mesh, vertices baked through the global matrix.
type FbxToGlb struct {
	baseDir  string
	sprites  map[string]*Sprite
	texCache map[*Sprite]uint32
}

func NewFbxToGlb() *FbxToGlb {
	return &FbxToGlb{
		sprites:  map[string]*Sprite{},
		texCache: map[*Sprite]uint32{},
	}
}

func (cv *FbxToGlb) Convert(inputPath, outputPath string) (*ExportResult, *[6]float64, error) {
	f, err := os.Open(inputPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, fmt.Errorf("%w: %s", ErrNotFound, inputPath)
		}
		return nil, nil, err
	}
	defer f.Close()
	scene, er := fbx.Load(f)
	if er != nil {
		return nil, nil, fmt.Errorf("%w: %s: %v", ErrDecode, inputPath, er)
	}
	cv.baseDir = filepath.Dir(inputPath)

	doc := gltf.NewDocument()
	doc.Asset.Generator = "go-sprite3d"
	bbx := dvec3.MinBox
	for _, mh := range scene.Meshes {
		bx, err := cv.convertMesh(doc, mh)
		if err != nil {
			return nil, nil, err
		}
		bbx.Join(bx)
	}
	if len(doc.Meshes) == 0 {
		return nil, nil, fmt.Errorf("%w: %s: no meshes", ErrDecode, inputPath)
	}

	res, err := writeDocument(doc, outputPath)
	if err != nil {
		return nil, nil, err
	}
	return res, bbx.Array(), nil
}

func (cv *FbxToGlb) convertMesh(doc *gltf.Document, mh *fbx.Mesh) (*dvec3.Box, error) {
	g := mh.Geometry
	bbx := dvec3.MinBox
	mtx := fbx.GetGlobalMatrix(mh)
	matrix := mat4d.FromArray(mtx.ToArray())

	var positions [][3]float32
	var normals [][3]float32
	var texCoords [][2]float32
	var indices []uint32

	corner := 0
	for _, face := range g.Faces {
		base := uint32(len(positions))
		for _, fi := range face {
			v := g.Vertices[fi]
			dv := matrix.MulVec3((*dvec3.T)(&v))
			positions = append(positions, [3]float32{float32(dv[0]), float32(dv[1]), float32(dv[2])})
			bbx.Extend(&dv)
			if corner < len(g.Normals) {
				n := g.Normals[corner]
				normals = append(normals, [3]float32{float32(n[0]), float32(n[1]), float32(n[2])})
			}
			if g.UVs[0] != nil && corner < len(g.UVs[0]) {
				uv := g.UVs[0][corner]
				// fbx uvs are bottom-up, glTF wants top-down
				texCoords = append(texCoords, [2]float32{float32(uv[0]), float32(1 - uv[1])})
			}
			corner++
		}
		for k := 2; k < len(face); k++ {
			indices = append(indices, base, base+uint32(k-1), base+uint32(k))
		}
	}
	if len(positions) == 0 {
		return &bbx, nil
	}

	attrs := map[string]uint32{
		gltf.POSITION: modeler.WritePosition(doc, positions),
	}
	if len(normals) == len(positions) {
		attrs[gltf.NORMAL] = modeler.WriteNormal(doc, normals)
	}
	if len(texCoords) == len(positions) {
		attrs[gltf.TEXCOORD_0] = modeler.WriteTextureCoord(doc, texCoords)
	}
	prim := &gltf.Primitive{
		Attributes: attrs,
		Indices:    gltf.Index(modeler.WriteIndices(doc, indices)),
	}
	var mt *fbx.Material
	if len(mh.Materials) > 0 {
		mt = mh.Materials[0]
	}
	mtlIdx, err := cv.convertMaterial(doc, mh.Name(), mt)
	if err != nil {
		return nil, err
	}
	prim.Material = gltf.Index(mtlIdx)

	doc.Meshes = append(doc.Meshes, &gltf.Mesh{
		Name:       mh.Name(),
		Primitives: []*gltf.Primitive{prim},
	})
	doc.Nodes = append(doc.Nodes, &gltf.Node{
		Name: mh.Name(),
		Mesh: gltf.Index(uint32(len(doc.Meshes) - 1)),
	})
	doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, uint32(len(doc.Nodes)-1))
	return &bbx, nil
}

func (cv *FbxToGlb) convertMaterial(doc *gltf.Document, name string, mt *fbx.Material) (uint32, error) {
	pbr := &gltf.PBRMetallicRoughness{
		BaseColorFactor: &[4]float32{1, 1, 1, 1},
		MetallicFactor:  gltf.Float(0),
		RoughnessFactor: gltf.Float(1),
	}
	mtl := &gltf.Material{Name: name, PBRMetallicRoughness: pbr, AlphaMode: gltf.AlphaOpaque}
	if mt != nil {
		pbr.BaseColorFactor = &[4]float32{
			float32(mt.DiffuseColor.R),
			float32(mt.DiffuseColor.G),
			float32(mt.DiffuseColor.B),
			1,
		}
		if mt.Textures[0] != nil {
			_, fileName := filepath.Split(string(mt.Textures[0].GetFileName()))
			path := filepath.Join(cv.baseDir, fileName)
			sp, ok := cv.sprites[path]
			if !ok {
				var err error
				sp, err = LoadSprite(path)
				if err != nil {
					// external texture files go missing all the time;
					// keep the diffuse color
					sp = nil
				}
				cv.sprites[path] = sp
			}
			if sp != nil {
				texIdx, err := writeTexture(doc, sp, cv.texCache)
				if err != nil {
					return 0, err
				}
				pbr.BaseColorTexture = &gltf.TextureInfo{Index: texIdx}
			}
		}
	}
	doc.Materials = append(doc.Materials, mtl)
	return uint32(len(doc.Materials) - 1), nil
}
