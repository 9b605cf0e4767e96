// Package viewer shows a packed atlas sheet in an SDL2/OpenGL window, with
// optional outlines around each atlas rectangle.
package viewer

import (
	"fmt"
	"image"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/atlaskit/internal/logger"
	"github.com/Faultbox/atlaskit/pkg/atlas"
)

// Config holds preview window settings.
type Config struct {
	Title    string
	Width    int
	Height   int
	VSync    bool
	ShowGrid bool
}

// Run opens the preview window and blocks until it is closed. The sheet is
// letterboxed to fit the window; rects are drawn as outlines in sheet pixel
// space when ShowGrid is set.
func Run(cfg Config, sheet *image.RGBA, rects []atlas.Rect) error {
	if sheet.Bounds().Dx() == 0 || sheet.Bounds().Dy() == 0 {
		return fmt.Errorf("viewer: empty sheet")
	}

	win, err := newWindow(cfg)
	if err != nil {
		return err
	}
	defer win.close()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("initializing OpenGL: %w", err)
	}
	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	sheetProgram, err := compileProgram(sheetVertexSrc, sheetFragmentSrc)
	if err != nil {
		return fmt.Errorf("sheet shader: %w", err)
	}
	defer gl.DeleteProgram(sheetProgram)

	outlineProgram, err := compileProgram(outlineVertexSrc, outlineFragmentSrc)
	if err != nil {
		return fmt.Errorf("outline shader: %w", err)
	}
	defer gl.DeleteProgram(outlineProgram)

	texture := uploadSheet(sheet)
	defer gl.DeleteTextures(1, &texture)

	winW, winH := win.size()
	ndc := fitSheet(sheet.Bounds().Dx(), sheet.Bounds().Dy(), winW, winH)

	quad := newQuadMesh(ndc)
	defer quad.delete()

	var outlines *mesh
	if cfg.ShowGrid && len(rects) > 0 {
		outlines = newOutlineMesh(ndc, sheet.Bounds().Dx(), sheet.Bounds().Dy(), rects)
		defer outlines.delete()
	}

	gl.Viewport(0, 0, int32(winW), int32(winH))
	gl.ClearColor(0.1, 0.1, 0.15, 1.0)

	running := true
	for running {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch e := event.(type) {
			case *sdl.QuitEvent:
				running = false
			case *sdl.KeyboardEvent:
				if e.Type == sdl.KEYDOWN && e.Keysym.Sym == sdl.K_ESCAPE {
					running = false
				}
			}
		}

		gl.Clear(gl.COLOR_BUFFER_BIT)

		gl.UseProgram(sheetProgram)
		gl.ActiveTexture(gl.TEXTURE0)
		gl.BindTexture(gl.TEXTURE_2D, texture)
		gl.BindVertexArray(quad.vao)
		gl.DrawArrays(gl.TRIANGLE_STRIP, 0, quad.count)
		gl.BindVertexArray(0)

		if outlines != nil {
			gl.UseProgram(outlineProgram)
			colorLoc := gl.GetUniformLocation(outlineProgram, gl.Str("uColor\x00"))
			gl.Uniform4f(colorLoc, 0.2, 0.9, 0.4, 1.0)
			gl.BindVertexArray(outlines.vao)
			gl.DrawArrays(gl.LINES, 0, outlines.count)
			gl.BindVertexArray(0)
		}

		win.swapBuffers()
		if !cfg.VSync {
			sdl.Delay(16)
		}
	}

	return nil
}

// ndcRect is the letterboxed sheet quad in normalized device coordinates.
type ndcRect struct {
	halfW, halfH float32
}

// fitSheet scales the sheet to the largest size that fits the window while
// keeping its aspect ratio.
func fitSheet(sheetW, sheetH, winW, winH int) ndcRect {
	scale := float32(winW) / float32(sheetW)
	if s := float32(winH) / float32(sheetH); s < scale {
		scale = s
	}
	return ndcRect{
		halfW: float32(sheetW) * scale / float32(winW),
		halfH: float32(sheetH) * scale / float32(winH),
	}
}

// toNDC maps a sheet pixel position to normalized device coordinates inside
// the letterboxed quad. Sheet y grows down, NDC y grows up.
func (n ndcRect) toNDC(x, y float32, sheetW, sheetH int) (float32, float32) {
	return -n.halfW + 2*n.halfW*x/float32(sheetW),
		n.halfH - 2*n.halfH*y/float32(sheetH)
}

// mesh is a VAO/VBO pair with a vertex count.
type mesh struct {
	vao   uint32
	vbo   uint32
	count int32
}

func newMesh(vertices []float32, floatsPerVertex int32, hasUV bool) *mesh {
	m := &mesh{count: int32(len(vertices)) / floatsPerVertex}

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, unsafe.Pointer(&vertices[0]), gl.STATIC_DRAW)

	stride := floatsPerVertex * 4
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, nil)
	gl.EnableVertexAttribArray(0)
	if hasUV {
		gl.VertexAttribPointer(1, 2, gl.FLOAT, false, stride, unsafe.Pointer(uintptr(2*4)))
		gl.EnableVertexAttribArray(1)
	}

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	return m
}

func (m *mesh) delete() {
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
	}
	if m.vbo != 0 {
		gl.DeleteBuffers(1, &m.vbo)
	}
}

// newQuadMesh builds the letterboxed sheet quad, position + UV per vertex.
func newQuadMesh(ndc ndcRect) *mesh {
	w, h := ndc.halfW, ndc.halfH
	vertices := []float32{
		// Position  // UV
		-w, h, 0, 0, // top left
		-w, -h, 0, 1, // bottom left
		w, h, 1, 0, // top right
		w, -h, 1, 1, // bottom right
	}
	return newMesh(vertices, 4, true)
}

// newOutlineMesh builds one line loop (as 4 segments) per atlas rectangle.
func newOutlineMesh(ndc ndcRect, sheetW, sheetH int, rects []atlas.Rect) *mesh {
	vertices := make([]float32, 0, len(rects)*16)
	for _, r := range rects {
		x0, y0 := ndc.toNDC(r.Min.X, r.Min.Y, sheetW, sheetH)
		x1, y1 := ndc.toNDC(r.Max.X, r.Max.Y, sheetW, sheetH)
		vertices = append(vertices,
			x0, y0, x1, y0, // top
			x1, y0, x1, y1, // right
			x1, y1, x0, y1, // bottom
			x0, y1, x0, y0, // left
		)
	}
	return newMesh(vertices, 2, false)
}

// uploadSheet uploads the RGBA sheet as a GL texture with nearest filtering,
// keeping tile edges crisp.
func uploadSheet(sheet *image.RGBA) uint32 {
	var texture uint32
	gl.GenTextures(1, &texture)
	gl.BindTexture(gl.TEXTURE_2D, texture)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA,
		int32(sheet.Bounds().Dx()), int32(sheet.Bounds().Dy()), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&sheet.Pix[0]))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	logger.Debug("sheet uploaded",
		zap.Uint32("texture", texture),
		zap.Int("width", sheet.Bounds().Dx()),
		zap.Int("height", sheet.Bounds().Dy()),
	)
	return texture
}
