// objtool is a CLI utility for inspecting and converting Wavefront OBJ assets.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/Faultbox/objloader/internal/config"
	"github.com/Faultbox/objloader/internal/logger"
	"github.com/Faultbox/objloader/pkg/loader"
	"github.com/Faultbox/objloader/pkg/obj"
)

func main() {
	config.ParseFlags()

	rest := flag.Args()
	if len(rest) < 1 {
		printUsage()
		os.Exit(1)
	}

	command := rest[0]
	args := rest[1:]

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	switch command {
	case "info":
		cmdInfo(cfg, args)
	case "export":
		cmdExport(cfg, args)
	case "simplify":
		cmdSimplify(cfg, args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`objtool - Wavefront OBJ asset utility

Usage:
  objtool <command> [options]

Commands:
  info <file.obj>                    Show meshes, materials and LODs
  export <file.obj> [output.glb]     Convert to binary glTF
  simplify <file.obj> <factor>       Decimate and report triangle counts

Examples:
  objtool info rock.obj
  objtool export rock.obj rock.glb
  objtool simplify rock.obj 0.25`)
}

func flagsFrom(cfg *config.Config) obj.Flag {
	flags := obj.None
	if cfg.Loader.CalculateTangents {
		flags |= obj.CalculateTangents
	}
	if cfg.Loader.JoinIdentical {
		flags |= obj.JoinIdentical
	}
	if cfg.Loader.CombineMeshes {
		flags |= obj.CombineMeshes
	}
	if cfg.Loader.Lods {
		flags |= obj.Lods
	}
	return flags
}

func loadModel(cfg *config.Config, path string) *obj.Model {
	l := loader.New(cfg.Loader.MaxThreads, logger.Sink())
	defer l.Close()

	handle, err := l.LoadFile(path, flagsFrom(cfg))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	model, err := handle.Wait()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return model
}

func cmdInfo(cfg *config.Config, args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: objtool info <file.obj>")
		os.Exit(1)
	}

	model := loadModel(cfg, args[0])

	fmt.Printf("Path: %s\n", model.Path)
	fmt.Printf("Vertices: %d  Triangles: %d\n", model.TotalVertexCount(), model.TotalTriangleCount())

	levels := make([]uint32, 0, len(model.Meshes))
	for lod := range model.Meshes {
		levels = append(levels, lod)
	}
	sort.Slice(levels, func(i, j int) bool { return levels[i] < levels[j] })

	for _, lod := range levels {
		fmt.Printf("\nLOD %d:\n", lod)
		for i := range model.Meshes[lod] {
			m := &model.Meshes[lod][i]
			fmt.Printf("  #%d %-24s material=%-16s verts=%d tris=%d\n",
				m.MeshNumber, m.Name, m.Material, len(m.Vertices), m.TriangleCount())
		}
		for i := range model.Materials[lod] {
			mat := &model.Materials[lod][i]
			fmt.Printf("  material %-20s diffuse=%d specular=%d normal=%d height=%d tiled=%v\n",
				mat.Name, len(mat.Diffuse), len(mat.Specular), len(mat.Normal), len(mat.Height), mat.IsTiled)
		}
	}

	if len(model.Combined) > 0 {
		fmt.Printf("\nCombined meshes: %d\n", len(model.Combined))
	}
}

func cmdExport(cfg *config.Config, args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: objtool export <file.obj> [output.glb]")
		os.Exit(1)
	}

	model := loadModel(cfg, args[0])

	out := ""
	if len(args) >= 2 {
		out = args[1]
	} else {
		stem := args[0][:len(args[0])-len(filepath.Ext(args[0]))]
		out = filepath.Join(cfg.Export.OutputDir, filepath.Base(stem)+".glb")
	}

	doc, err := obj.ExportGLTF(model, cfg.Export.LodLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	data, err := obj.EncodeGLB(doc)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := os.WriteFile(out, data, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Wrote %s (%d bytes)\n", out, len(data))
}

func cmdSimplify(cfg *config.Config, args []string) {
	if len(args) < 2 {
		fmt.Fprintln(os.Stderr, "Usage: objtool simplify <file.obj> <factor>")
		os.Exit(1)
	}

	factor, err := strconv.ParseFloat(args[1], 64)
	if err != nil || factor <= 0 || factor > 1 {
		fmt.Fprintln(os.Stderr, "factor must be in (0, 1]")
		os.Exit(1)
	}

	model := loadModel(cfg, args[0])

	before := 0
	for i := range model.Meshes[0] {
		before += model.Meshes[0][i].TriangleCount()
	}
	if !model.GenerateLOD(0, 1, factor) {
		fmt.Fprintln(os.Stderr, "Error: nothing to simplify at LOD 0")
		os.Exit(1)
	}

	after := 0
	for i := range model.Meshes[1] {
		after += model.Meshes[1][i].TriangleCount()
	}
	fmt.Printf("Triangles: %d -> %d\n", before, after)
}
