package domain

// Feature - элемент, который можно включать и выключать пачкой:
// отдельный монстр или целая группа (в том числе вложенная).
type Feature interface {
	Activate()
	Deactivate()
}

// FeatureGroup применяет Activate/Deactivate ко всем участникам в глубину
type FeatureGroup struct {
	Name     string
	features []Feature
}

func NewFeatureGroup(name string) *FeatureGroup {
	return &FeatureGroup{Name: name}
}

func (g *FeatureGroup) Add(f Feature) {
	g.features = append(g.features, f)
}

func (g *FeatureGroup) Remove(f Feature) {
	for i, existing := range g.features {
		if existing == f {
			g.features = append(g.features[:i], g.features[i+1:]...)
			return
		}
	}
}

func (g *FeatureGroup) Len() int {
	return len(g.features)
}

func (g *FeatureGroup) Activate() {
	for _, f := range g.features {
		f.Activate()
	}
}

func (g *FeatureGroup) Deactivate() {
	for _, f := range g.features {
		f.Deactivate()
	}
}
