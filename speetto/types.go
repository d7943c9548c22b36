package speetto

// Tier는 1등~3등 당첨 등수입니다
type Tier int

const (
	Tier1 Tier = iota + 1
	Tier2
	Tier3
)

// TierCount는 게임마다 추적하는 등수의 개수입니다
const TierCount = 3

func (t Tier) index() int {
	return int(t) - 1
}

func (t Tier) valid() bool {
	return t >= Tier1 && t <= Tier3
}

// GameRecord는 스피또 게임 한 회차의 잔여 현황입니다.
// 모든 값은 페이지에 표시된 문자열 그대로 보관합니다.
type GameRecord struct {
	Family      string            // 게임 종류 (예: "1000", "2000")
	Round       string            // 회차 (예: "58")
	BaseDate    string            // 기준일 문구
	Prize       [TierCount]string // 등수별 당첨금 문구
	Remaining   [TierCount]string // 등수별 잔여 매수 (단위 없음)
	RestockRate string            // 판매점 입고율 (% 없음)
}

// Name은 엑셀에 표시할 게임명을 반환합니다 (예: "스피또1000")
func (r GameRecord) Name() string {
	return "스피또" + r.Family
}

// Key는 게임을 식별하는 (종류, 회차) 키를 반환합니다
func (r GameRecord) Key() GameKey {
	return GameKey{Family: r.Family, Round: r.Round}
}

// GameKey는 게임 종류와 회차의 쌍입니다
type GameKey struct {
	Family string
	Round  string
}
