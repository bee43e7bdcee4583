package service

import (
	"strings"

	"Voyage-App/internal/domain/model"
)

// OtherDestinationID どの都市にも紐付かないレコードの受け皿
const OtherDestinationID = "dest_other"

// DestinationResolver は景点の都市から目的地一覧を導出し、
// 餐厅・菜品を「附近景点の名前 → 住所の部分一致 → その他」の順で目的地に割り当てる。
type DestinationResolver struct {
	destinationsByKey map[string]*model.Destination
	nameToDestination map[string]string
	other             *model.Destination
}

// NewDestinationResolver は正規化済み景点から目的地表を構築し、
// 各景点のDestinationIDをその場で確定させる。
func NewDestinationResolver(attractions []model.Attraction) *DestinationResolver {
	r := &DestinationResolver{
		destinationsByKey: make(map[string]*model.Destination),
		nameToDestination: make(map[string]string),
		other: &model.Destination{
			ID:          OtherDestinationID,
			Name:        "Other",
			Description: "Other",
		},
	}

	for _, a := range attractions {
		key := a.DestinationKey
		if _, ok := r.destinationsByKey[key]; !ok {
			display := key
			if display == "" {
				display = "Other"
			}
			r.destinationsByKey[key] = &model.Destination{
				ID:          MakeStableID("dest", display),
				Name:        display,
				Description: display,
			}
		}
	}

	for i := range attractions {
		a := &attractions[i]
		destID := r.other.ID
		if d, ok := r.destinationsByKey[a.DestinationKey]; ok {
			destID = d.ID
		}
		a.DestinationID = destID

		for _, namePtr := range []*string{a.NameZh, a.NameEn} {
			if namePtr != nil && *namePtr != "" {
				r.nameToDestination[*namePtr] = destID
			}
		}
		if a.Name != "" {
			r.nameToDestination[a.Name] = destID
		}
	}

	return r
}

// Destinations は導出した目的地一覧（その他を含む）を返す
func (r *DestinationResolver) Destinations() []model.Destination {
	out := make([]model.Destination, 0, len(r.destinationsByKey)+1)
	for _, d := range r.destinationsByKey {
		out = append(out, *d)
	}
	out = append(out, *r.other)
	return out
}

// Resolve は附近景点の名前一致、だめなら住所に都市名が含まれるかで目的地を決める
func (r *DestinationResolver) Resolve(nearbyAttractions []string, address *string) string {
	for _, name := range nearbyAttractions {
		if destID, ok := r.nameToDestination[name]; ok {
			return destID
		}
	}
	if address != nil {
		addr := strings.TrimSpace(*address)
		if addr != "" {
			for _, d := range r.destinationsByKey {
				if d.Name != "" && strings.Contains(addr, d.Name) {
					return d.ID
				}
			}
		}
	}
	return r.other.ID
}

// AssignDestinations は餐厅・菜品の目的地IDをまとめて確定させる
func (r *DestinationResolver) AssignDestinations(restaurants []model.Restaurant, foods []model.Food) {
	for i := range restaurants {
		restaurants[i].DestinationID = r.Resolve(restaurants[i].NearbyAttractions, restaurants[i].Address)
	}
	for i := range foods {
		foods[i].DestinationID = r.Resolve(foods[i].NearbyAttractions, foods[i].RestaurantAddress)
	}
}
