package render

import "github.com/go-gl/mathgl/mgl32"

// BuffersPerMesh - буферы атрибутов на один меш: позиция+грань и id блока
const BuffersPerMesh = 2

// MeshHandle - ресурсы GPU одного чанка
type MeshHandle struct {
	VAO     uint32
	Buffers [BuffersPerMesh]uint32
}

// Device - графический бэкенд. Таблица мешей владеет выданными ресурсами
// и сама решает, когда их перезаливать.
type Device interface {
	// GenMeshes выделяет n наборов ресурсов
	GenMeshes(n int) []MeshHandle
	// Upload заливает поток вершин в оба буфера меша
	Upload(h MeshHandle, data []byte)
	// SetViewProjection задаёт матрицы вида и проекции для прохода отрисовки
	SetViewProjection(view, proj mgl32.Mat4)
	// DrawMesh рисует vertexCount вершин меша со смещением чанка
	DrawMesh(h MeshHandle, chunkPos mgl32.Vec3, vertexCount int32)
}

// DrawCall - записанный вызов отрисовки
type DrawCall struct {
	VAO         uint32
	ChunkPos    mgl32.Vec3
	VertexCount int32
}

// MemoryDevice хранит загруженные данные в памяти. Используется в headless
// режиме и в тестах.
type MemoryDevice struct {
	next    uint32
	data    map[uint32][]byte
	uploads int
	draws   []DrawCall

	View mgl32.Mat4
	Proj mgl32.Mat4
}

// NewMemoryDevice создаёт пустое устройство
func NewMemoryDevice() *MemoryDevice {
	return &MemoryDevice{
		data: make(map[uint32][]byte),
		View: mgl32.Ident4(),
		Proj: mgl32.Ident4(),
	}
}

func (d *MemoryDevice) GenMeshes(n int) []MeshHandle {
	out := make([]MeshHandle, n)
	for i := range out {
		d.next++
		out[i].VAO = d.next
		for b := range out[i].Buffers {
			d.next++
			out[i].Buffers[b] = d.next
		}
	}
	return out
}

func (d *MemoryDevice) Upload(h MeshHandle, data []byte) {
	buf := make([]byte, len(data))
	copy(buf, data)
	d.data[h.VAO] = buf
	d.uploads++
}

func (d *MemoryDevice) SetViewProjection(view, proj mgl32.Mat4) {
	d.View = view
	d.Proj = proj
}

func (d *MemoryDevice) DrawMesh(h MeshHandle, chunkPos mgl32.Vec3, vertexCount int32) {
	d.draws = append(d.draws, DrawCall{VAO: h.VAO, ChunkPos: chunkPos, VertexCount: vertexCount})
}

// Data возвращает последние загруженные в меш данные
func (d *MemoryDevice) Data(h MeshHandle) []byte {
	return d.data[h.VAO]
}

// Uploads возвращает количество заливок
func (d *MemoryDevice) Uploads() int {
	return d.uploads
}

// TakeDraws возвращает вызовы отрисовки с прошлого раза и очищает список
func (d *MemoryDevice) TakeDraws() []DrawCall {
	out := d.draws
	d.draws = nil
	return out
}
