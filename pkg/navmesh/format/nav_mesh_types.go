package format

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/hjson/hjson-go/v4"
)

var ErrInvalidMesh = errors.New("invalid mesh data")

const (
	// FaceStride 导出的面数据每5个整数一个三角形 第0位和第4位是标记位 第1-3位是顶点索引
	FaceStride = 5
	// VertexStride 顶点数据每3个浮点数一个顶点
	VertexStride = 3
)

// MeshData 引擎导出的三角化寻路网格原始数据
type MeshData struct {
	Vertices []float64 `json:"vertices"`
	Faces    []int     `json:"faces"`
}

func (m *MeshData) VertexCount() int {
	return len(m.Vertices) / VertexStride
}

func (m *MeshData) FaceCount() int {
	return len(m.Faces) / FaceStride
}

// Vertex 第i个顶点坐标
func (m *MeshData) Vertex(i int) (x, y, z float64) {
	return m.Vertices[i*VertexStride], m.Vertices[i*VertexStride+1], m.Vertices[i*VertexStride+2]
}

// Face 第i个面的三个顶点索引 忽略首尾标记位
func (m *MeshData) Face(i int) (a, b, c int) {
	return m.Faces[i*FaceStride+1], m.Faces[i*FaceStride+2], m.Faces[i*FaceStride+3]
}

// AppendFace 按导出格式追加一个面
func (m *MeshData) AppendFace(a, b, c int) {
	m.Faces = append(m.Faces, 3, a, b, c, 0)
}

func (m *MeshData) AppendVertex(x, y, z float64) {
	m.Vertices = append(m.Vertices, x, y, z)
}

// Validate 检查数组长度与顶点索引范围
func (m *MeshData) Validate() error {
	if len(m.Vertices)%VertexStride != 0 {
		return fmt.Errorf("%w: vertex array length %v is not a multiple of %v", ErrInvalidMesh, len(m.Vertices), VertexStride)
	}
	if len(m.Faces)%FaceStride != 0 {
		return fmt.Errorf("%w: face array length %v is not a multiple of %v", ErrInvalidMesh, len(m.Faces), FaceStride)
	}
	vertexCount := m.VertexCount()
	for i := 0; i < m.FaceCount(); i++ {
		a, b, c := m.Face(i)
		for _, index := range []int{a, b, c} {
			if index < 0 || index >= vertexCount {
				return fmt.Errorf("%w: face %v references vertex %v, vertex count %v", ErrInvalidMesh, i, index, vertexCount)
			}
		}
	}
	return nil
}

// ParseJson 解析json导出格式 {"vertices": [...], "faces": [...]}
func ParseJson(data []byte) (*MeshData, error) {
	meshData := new(MeshData)
	err := hjson.Unmarshal(data, meshData)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidMesh, err)
	}
	err = meshData.Validate()
	if err != nil {
		return nil, err
	}
	return meshData, nil
}

// ParseObj 解析编辑器导出的obj文本 只读取v和f行 面索引从1开始
func ParseObj(reader io.Reader) (*MeshData, error) {
	meshData := new(MeshData)
	scanner := bufio.NewScanner(reader)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if len(line) < 2 || line[1] != ' ' {
			continue
		}
		fields := strings.Fields(line[2:])
		switch line[0] {
		case 'v':
			if len(fields) < 3 {
				return nil, fmt.Errorf("%w: line %v: expected 3 coordinates, found %v", ErrInvalidMesh, lineNum, len(fields))
			}
			var xyz [3]float64
			for i := 0; i < 3; i++ {
				value, err := strconv.ParseFloat(fields[i], 64)
				if err != nil {
					return nil, fmt.Errorf("%w: line %v: %v", ErrInvalidMesh, lineNum, err)
				}
				xyz[i] = value
			}
			meshData.AppendVertex(xyz[0], xyz[1], xyz[2])
		case 'f':
			if len(fields) < 3 {
				return nil, fmt.Errorf("%w: line %v: expected 3 indices, found %v", ErrInvalidMesh, lineNum, len(fields))
			}
			var abc [3]int
			for i := 0; i < 3; i++ {
				// v/vt/vn 格式只取顶点索引
				token, _, _ := strings.Cut(fields[i], "/")
				value, err := strconv.Atoi(token)
				if err != nil {
					return nil, fmt.Errorf("%w: line %v: %v", ErrInvalidMesh, lineNum, err)
				}
				abc[i] = value - 1
			}
			meshData.AppendFace(abc[0], abc[1], abc[2])
		}
	}
	err := scanner.Err()
	if err != nil {
		return nil, err
	}
	err = meshData.Validate()
	if err != nil {
		return nil, err
	}
	return meshData, nil
}

// LoadFromFile 按扩展名选择解析方式
func LoadFromFile(filePath string) (*MeshData, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}
	return Parse(filePath, data)
}

// Parse 按文件名扩展名解析已读取的文件内容
func Parse(fileName string, data []byte) (*MeshData, error) {
	if strings.ToLower(filepath.Ext(fileName)) == ".obj" {
		return ParseObj(bytes.NewReader(data))
	}
	return ParseJson(data)
}

// ZoneName 网格文件名去掉扩展名即zone名 scene.navmesh.json -> scene
func ZoneName(filePath string) string {
	name := filepath.Base(filePath)
	name, _, _ = strings.Cut(name, ".")
	return name
}
