// Command polyorbd serves produced polyhedron meshes to browser clients. A
// GET on /mesh?notation=dC returns the triangulated buffers as JSON once; a
// websocket on /ws holds a session where each {"notation": "..."} message is
// answered with a fresh mesh frame.
package main

import (
	"encoding/json"
	"flag"
	"log"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/kvsari/polyorb/planar"
	"github.com/kvsari/polyorb/platonic"
)

type meshData struct {
	Type     string       `json:"type"`
	Notation string       `json:"notation"`
	Vertices [][3]float32 `json:"vertices"`
	Normals  [][3]float32 `json:"normals"`
	Colours  [][3]float32 `json:"colours"`
	Indices  []uint16     `json:"indices"`
}

type errorData struct {
	Type  string `json:"type"`
	Error string `json:"error"`
}

type request struct {
	Notation string `json:"notation"`
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(*http.Request) bool {
		return true
	},
}

var edgeLen float64

// sideColour mirrors the viewer's palette so both consumers show the same
// facets.
func sideColour(sides int) [3]float32 {
	switch sides {
	case 3:
		return [3]float32{0.84, 0.29, 0.20}
	case 4:
		return [3]float32{0.25, 0.47, 0.75}
	case 5:
		return [3]float32{0.33, 0.62, 0.35}
	case 6:
		return [3]float32{0.87, 0.67, 0.26}
	default:
		return [3]float32{0.59, 0.43, 0.71}
	}
}

// buildMesh produces the polyhedron for a notation string and flattens every
// face through the planar adapter into one concatenated buffer pair.
func buildMesh(notation string) (*meshData, error) {
	spec, err := platonic.Parse(notation, edgeLen)
	if err != nil {
		return nil, err
	}

	poly, err := spec.Produce()
	if err != nil {
		return nil, err
	}

	mesh := &meshData{Type: "mesh", Notation: spec.Notation()}
	offset := 0
	for _, polygon := range planar.FromPolyhedron(poly) {
		sides := len(polygon.Vertices())
		vertices, indices := polygon.Buffers(sideColour(sides), offset)

		for _, v := range vertices {
			mesh.Vertices = append(mesh.Vertices, v.Position)
			mesh.Normals = append(mesh.Normals, v.Normal)
			mesh.Colours = append(mesh.Colours, v.Colour)
		}
		mesh.Indices = append(mesh.Indices, indices...)
		offset += len(vertices)
	}

	return mesh, nil
}

func serveMesh(w http.ResponseWriter, r *http.Request) {
	notation := r.URL.Query().Get("notation")
	if notation == "" {
		notation = "C"
	}

	mesh, err := buildMesh(notation)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(mesh); err != nil {
		log.Println("encoding mesh:", err)
	}
}

func handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("websocket upgrade:", err)
		return
	}
	defer conn.Close()

	log.Println("client connected:", conn.RemoteAddr())

	// Something to look at while the first request is typed.
	if mesh, err := buildMesh("C"); err == nil {
		if err := conn.WriteJSON(mesh); err != nil {
			return
		}
	}

	for {
		var req request
		if err := conn.ReadJSON(&req); err != nil {
			log.Println("client gone:", conn.RemoteAddr())
			return
		}

		mesh, err := buildMesh(req.Notation)
		if err != nil {
			if err := conn.WriteJSON(errorData{Type: "error", Error: err.Error()}); err != nil {
				return
			}
			continue
		}

		if err := conn.WriteJSON(mesh); err != nil {
			return
		}
	}
}

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	flag.Float64Var(&edgeLen, "len", 1.0, "seed edge length")
	flag.Parse()

	http.HandleFunc("/mesh", serveMesh)
	http.HandleFunc("/ws", handleWebSocket)

	log.Println("listening on", *addr)
	log.Fatal(http.ListenAndServe(*addr, nil))
}
