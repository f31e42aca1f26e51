package nav

import "encoding/json"

//the JSON shapes below are the contract with the site renderer's sidebar

type jsonLink struct {
	Text string `json:"text"`
	Link string `json:"link"`
}

type jsonGroup struct {
	Text  string `json:"text"`
	Items []Node `json:"items"`
}

func (l *Link) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonLink{Text: l.Label, Link: l.Href})
}

func (g *Group) MarshalJSON() ([]byte, error) {
	items := g.Children
	if items == nil {
		items = []Node{} //an empty group serializes as [], not null
	}
	return json.Marshal(jsonGroup{Text: g.Label, Items: items})
}
