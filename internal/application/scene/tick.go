package scene

// Tick advances animation state by one tick.
//
// Set-level OnTick hooks run first, in registration order. Then, for every
// element in list order, the element's own OnTick runs followed by its set's
// ElementTick. Hidden and culled elements tick like any other. The scene
// tick hook and the camera pan come last.
func (s *Scene) Tick(n uint64) {
	for _, name := range s.setOrder {
		set := s.sets[name]
		if fn := set.Hooks().OnTick; fn != nil {
			s.guard("tick "+name, func() { fn(set, n) })
		}
	}

	for _, e := range s.elements {
		if fn := e.OnTick; fn != nil {
			s.guard("element tick "+e.Name, func() { fn(e, n) })
		}
		set, ok := s.sets[e.Name]
		if !ok {
			continue
		}
		if fn := set.Hooks().ElementTick; fn != nil {
			s.guard("element tick "+e.Name, func() { fn(e, n) })
		}
	}

	if fn := s.tickHook; fn != nil {
		s.guard("scene tick", func() { fn(s, n) })
	}
	s.advancePan()
}

// SetTickHook installs a scene-level hook that runs after the element hooks
// of every tick.
func (s *Scene) SetTickHook(fn func(s *Scene, tick uint64)) {
	s.tickHook = fn
}
