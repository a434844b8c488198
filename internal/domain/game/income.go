package game

// NoticeKind says why a resource changed during an income tick
type NoticeKind string

const (
	NoticeExpired NoticeKind = "expired"
	NoticeIncome  NoticeKind = "income"
)

// ResourceNotice reports one change to a player's resource
type ResourceNotice struct {
	PlayerID   ID
	ModChannel ID
	Resource   string
	Kind       NoticeKind
	Amount     int
	Total      int
}

// TriggerDailyIncome runs one income tick for every player. Perishable
// resources are emptied first, then positive income is added up to max.
func (g *Game) TriggerDailyIncome() []ResourceNotice {
	var notices []ResourceNotice
	for pi := range g.Players {
		p := &g.Players[pi]
		for ri := range p.Resources {
			r := &p.Resources[ri]
			if r.IsPerishable {
				if r.Amount > 0 {
					notices = append(notices, ResourceNotice{
						PlayerID:   p.ID,
						ModChannel: p.ModChannel,
						Resource:   r.Type,
						Kind:       NoticeExpired,
						Amount:     r.Amount,
					})
				}
				r.Amount = 0
			}
			if r.Income > 0 {
				r.Amount = clamp(r.Amount, r.Income, r.Max)
				notices = append(notices, ResourceNotice{
					PlayerID:   p.ID,
					ModChannel: p.ModChannel,
					Resource:   r.Type,
					Kind:       NoticeIncome,
					Amount:     r.Income,
					Total:      r.Amount,
				})
			}
		}
	}
	return notices
}
