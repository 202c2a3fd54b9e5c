// Package loader ties the OBJ pipeline to the worker pool: path
// discovery and file reads happen on the caller, parsing and mesh
// processing on a pooled worker, with results delivered through
// completion handles.
package loader

import (
	"fmt"
	"sync/atomic"

	"github.com/Faultbox/objloader/pkg/obj"
	"github.com/Faultbox/objloader/pkg/objlog"
	"github.com/Faultbox/objloader/pkg/pool"
	"github.com/Faultbox/objloader/pkg/timer"
)

// Loader loads OBJ assets asynchronously. Concurrent LoadFile calls
// are safe; each load owns its state exclusively.
type Loader struct {
	pool       *pool.Pool
	log        objlog.Sink
	totalTasks atomic.Uint64
}

// New creates a loader backed by a pool of at most maxThreads workers.
// maxThreads == 0 degrades to inline loading on the caller.
func New(maxThreads int, sink objlog.Sink) *Loader {
	if sink == nil {
		sink = objlog.NopSink{}
	}
	return &Loader{
		pool: pool.New(maxThreads, sink),
		log:  sink,
	}
}

// WorkerCount returns the number of spawned pool workers.
func (l *Loader) WorkerCount() int {
	return l.pool.WorkerCount()
}

// Close shuts the pool down. Outstanding loads drain; later LoadFile
// calls return a handle that resolves with pool.ErrPoolClosed. A loader
// built with maxThreads == 0 keeps loading inline after Close.
func (l *Loader) Close() {
	l.pool.Close()
}

// LoadFile schedules an asynchronous load of the OBJ at path together
// with its MTL siblings and, when the Lods flag is set, its `_lod<k>`
// variants.
//
// Path discovery and all file reads run synchronously on the caller: a
// missing OBJ fails here, a missing MTL is only a warning. Parsing and
// mesh processing run on a pool worker; their failures surface through
// the returned handle.
func (l *Loader) LoadFile(path string, flags obj.Flag) (*pool.Handle[*obj.Model], error) {
	cacheTimer := timer.New()
	state := obj.NewState(path, flags)

	if err := obj.CachePaths(state); err != nil {
		return nil, err
	}

	objBuffers := make(map[uint32][]byte, len(state.Plan))
	mtlBuffers := make(map[uint32][]byte, len(state.Plan))

	for _, f := range state.Plan {
		buf, err := obj.ReadFileToBuffer(f.ObjPath)
		if err != nil {
			return nil, &obj.PlanError{Path: f.ObjPath, Err: err}
		}
		objBuffers[f.LODLevel] = buf

		mtlBuf, err := obj.ReadFileToBuffer(f.MtlPath)
		if err != nil {
			l.log.Log(objlog.Warning, fmt.Sprintf("No mtl found for file: %s", f.ObjPath))
			mtlBuf = nil
		}
		mtlBuffers[f.LODLevel] = mtlBuf
	}

	taskNumber := l.totalTasks.Add(1)
	cacheElapsed := cacheTimer.Elapsed()

	handle := pool.Enqueue(l.pool, func() (*obj.Model, error) {
		processTimer := timer.New()
		l.log.Log(objlog.Info, fmt.Sprintf("Started loading task #%d - %s", taskNumber, path))

		model, err := loadFileInternal(state, objBuffers, mtlBuffers)
		if err != nil {
			l.log.Log(objlog.Error, fmt.Sprintf("Error loading %s: %v", path, err))
			return nil, err
		}

		l.log.Log(objlog.Success, fmt.Sprintf(
			"Successfully loaded task #%d in %s", taskNumber, processTimer.Elapsed()+cacheElapsed))
		return model, nil
	})

	return handle, nil
}

// loadFileInternal runs the per-LOD pipeline over the stashed buffers.
// Materials parse first so the OBJ pass can mark them tiled as usemtl
// windows close.
func loadFileInternal(state *obj.State, objBuffers, mtlBuffers map[uint32][]byte) (*obj.Model, error) {
	for _, f := range state.Plan {
		lod := f.LODLevel

		obj.ParseMtl(state, mtlBuffers[lod], lod)
		if err := obj.ParseObj(state, objBuffers[lod], lod); err != nil {
			return nil, err
		}

		meshes := state.Meshes[lod]
		obj.ConstructVertices(state, meshes)

		if state.Flags.Has(obj.CalculateTangents) {
			obj.CalcTangentSpace(meshes)
		}
		if state.Flags.Has(obj.JoinIdentical) {
			obj.JoinIdenticalVertices(meshes)
		}
	}

	if state.Flags.Has(obj.CombineMeshes) {
		obj.CombineMeshes(state)
	}

	return state.Model(), nil
}
