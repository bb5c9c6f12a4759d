// Package selection implementa la selección del visitante (carrito ligero de la
// vitrina). La lista vive en un almacenamiento duradero del lado del cliente y
// cada superficie de UI mantiene su propio Store: toda mutación persiste la
// lista completa y el almacenamiento la rebroadcast a los demás Stores, que se
// resincronizan releyendo. No hay dueño único en memoria.
package selection

import "encoding/json"

// ItemType distingue las dos familias de entradas de la selección.
type ItemType string

const (
	TypeProduct ItemType = "product"
	TypePromo   ItemType = "promo"
)

// StorageKey clave fija bajo la que se serializa toda la selección.
const StorageKey = "sred_selection"

// Item es una línea de la selección. La identidad es la pareja (ID, Type):
// dos entradas son la misma línea exactamente cuando ambos coinciden.
type Item struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	ImageURL    string   `json:"imageUrl,omitempty"`
	Type        ItemType `json:"type"`
	Quantity    int      `json:"quantity"`
}

// UnmarshalJSON acepta el id persistido tanto como string como número JSON
// (las filas de la base exponen ids numéricos y el formato antiguo los
// serializaba así) y lo normaliza a su forma de texto.
func (it *Item) UnmarshalJSON(data []byte) error {
	type alias Item
	aux := struct {
		ID json.RawMessage `json:"id"`
		*alias
	}{alias: (*alias)(it)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if len(aux.ID) > 0 && aux.ID[0] == '"' {
		return json.Unmarshal(aux.ID, &it.ID)
	}
	if len(aux.ID) > 0 {
		var n json.Number
		if err := json.Unmarshal(aux.ID, &n); err != nil {
			return err
		}
		it.ID = n.String()
	}
	return nil
}

// sameLine compara por clave de identidad (ID, Type).
func (it Item) sameLine(id string, typ ItemType) bool {
	return it.ID == id && it.Type == typ
}

// normalize aplica la regla de compatibilidad: entradas persistidas por el
// formato antiguo sin quantity quedan en 1. Se aplica en cada lectura.
func normalize(items []Item) []Item {
	for i := range items {
		if items[i].Quantity < 1 {
			items[i].Quantity = 1
		}
	}
	return items
}
