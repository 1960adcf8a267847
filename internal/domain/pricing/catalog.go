package pricing

import "slices"

type Area struct {
	ID          string
	Name        string
	PriceUSD    float64
	Description string
	Capacity    int // 0 when the area has no published capacity
}

type Catalog []Area

var generalAreas = Catalog{
	{ID: "salon_colonial_mesa", Name: "Salón Colonial (Por Mesa)", PriceUSD: 25, Description: "Mesa reservada en el salón colonial"},
	{ID: "caney_piscina_grande", Name: "Caney Piscina Grande", PriceUSD: 50, Description: "Caney techado junto a la piscina grande"},
	{ID: "bohio_potrero", Name: "Bohío Potrero", PriceUSD: 30, Description: "Bohío en la zona del potrero"},
	{ID: "area_piscina_pequena", Name: "Área Piscina Pequeña", PriceUSD: 20, Description: "Área reservada junto a la piscina pequeña"},
}

var smallGroupAreas = Catalog{
	{ID: "gazebo-principal", Name: "Gazebo Principal", PriceUSD: 25, Description: "Gazebo techado con vista al jardín principal", Capacity: 50},
	{ID: "zona-parrillas", Name: "Zona de Parrillas Premium", PriceUSD: 20, Description: "Área exclusiva con parrillas y mesas", Capacity: 30},
	{ID: "area-piscina", Name: "Área de Piscina Privada", PriceUSD: 35, Description: "Acceso exclusivo a zona de piscina", Capacity: 40},
}

func GeneralAreas() Catalog {
	return slices.Clone(generalAreas)
}

func SmallGroupAreas() Catalog {
	return slices.Clone(smallGroupAreas)
}

func (c Catalog) Lookup(id string) (Area, bool) {
	for _, a := range c {
		if a.ID == id {
			return a, true
		}
	}
	return Area{}, false
}

func (c Catalog) Contains(id string) bool {
	_, ok := c.Lookup(id)
	return ok
}

// Select resolves ids in the order given. Unknown ids are skipped and
// repeated ids resolve once.
func (c Catalog) Select(ids []string) []Area {
	selected := make([]Area, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		if a, ok := c.Lookup(id); ok {
			selected = append(selected, a)
		}
	}
	return selected
}
