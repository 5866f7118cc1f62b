package starflight

import "log/slog"

// Scene owns the placed objects, the active selection and the frame's
// draw list.
type Scene struct {
	objects []*Object3d
	active  int
	light   Vector3
	store   *FaceStore
}

func NewScene(light Vector3) *Scene {
	return &Scene{
		active: -1,
		light:  light.Normalize(),
		store:  NewFaceStore(),
	}
}

// AddObject places o in the scene. The first object added becomes active.
func (w *Scene) AddObject(o *Object3d) int {
	w.objects = append(w.objects, o)
	if w.active == -1 {
		w.active = 0
	}
	slog.Debug("scene object added", "kind", o.Shape.Kind, "index", len(w.objects)-1)
	return len(w.objects) - 1
}

func (w *Scene) Objects() []*Object3d {
	return w.objects
}

// Active returns the object that input rotates and scales, or nil.
func (w *Scene) Active() *Object3d {
	if w.active < 0 || w.active >= len(w.objects) {
		return nil
	}
	return w.objects[w.active]
}

func (w *Scene) ActiveIndex() int {
	return w.active
}

// CycleActive selects the next object, wrapping around.
func (w *Scene) CycleActive() {
	if len(w.objects) == 0 {
		return
	}
	w.active = (w.active + 1) % len(w.objects)
}

func (w *Scene) Update(dt float64) {
	for _, o := range w.objects {
		o.Update(dt)
	}
}

// CollectPolygons projects the scene objects plus any extra objects and
// returns every visible face sorted back to front.
func (w *Scene) CollectPolygons(cam *Camera, pr Projector, extra []*Object3d) []Polygon {
	w.store.Reset()
	for _, o := range w.objects {
		w.store.Add(o.ProjectAll(cam, pr, w.light)...)
	}
	for _, o := range extra {
		w.store.Add(o.ProjectAll(cam, pr, w.light)...)
	}
	w.store.SortBackToFront()
	return w.store.Polygons()
}
