package store

import "jeju-tour-api/internal/domain/entity"

type destination struct {
	name, code, image, description string
}

var destinations = []destination{
	{"우도", "우도", "udo.jpg", "에메랄드빛 바다와 땅콩 아이스크림으로 유명한 제주 동쪽의 작은 섬"},
	{"성산일출봉", "성산일출봉", "seongsan.jpg", "유네스코 세계자연유산, 제주에서 가장 먼저 해가 뜨는 분화구"},
	{"한라산", "한라산", "hallasan.jpg", "남한에서 가장 높은 산, 백록담과 다양한 등반 코스"},
	{"협재해변", "협재해변", "hyeopjae.jpg", "비양도가 보이는 하얀 모래와 투명한 바다의 서쪽 해변"},
}

func opts(values ...string) []entity.Option {
	out := make([]entity.Option, len(values))
	for i, v := range values {
		out[i] = entity.Option{Label: v, Value: v}
	}
	return out
}

var initialFixtures = map[string]func() entity.Catalog{
	"우도":    udoCatalog,
	"성산일출봉": seongsanCatalog,
	"한라산":   hallasanCatalog,
	"협재해변":  hyeopjaeCatalog,
}

var refinedFixtures = map[string]func() entity.Catalog{
	"우도":    udoRefined,
	"성산일출봉": seongsanRefined,
	"한라산":   hallasanRefined,
	"협재해변":  hyeopjaeRefined,
}

func udoCatalog() entity.Catalog {
	return entity.Catalog{
		Filters: []entity.Filter{
			{Key: "type", Label: "투어 유형", Type: entity.FilterSingleSelect, Options: opts("전기자전거", "전동스쿠터", "버스투어")},
			{Key: "duration", Label: "소요 시간", Type: entity.FilterSingleSelect, Options: opts("3시간", "4시간", "5시간")},
			{Key: "includes", Label: "포함 사항", Type: entity.FilterMultiSelect, Options: opts("도항선 왕복", "잠수함 탑승")},
		},
		Items: []entity.TourItem{
			{
				Title:  "[우도] 전기자전거 섬 일주 투어 + 왕복 도항선",
				Link:   "https://experiences.myrealtrip.com/products/3410245",
				Course: "성산항 → 우도 천진항 → 서빈백사 → 우도봉 → 검멀레해변 → 하고수동해변",
				Price:  35000,
				Region: "제주시 우도면",
				Attributes: entity.NewAttributes(
					"type", "전기자전거",
					"duration", "4시간",
					"includes", "도항선 왕복",
					"guide_language", "한국어",
				),
			},
			{
				Title:  "[우도] 전동스쿠터 자유여행 패키지",
				Link:   "https://experiences.myrealtrip.com/products/3527718",
				Course: "우도 하우목동항 → 홍조단괴해빈 → 비양도(우도) → 우도등대공원",
				Price:  29000,
				Region: "제주시 우도면",
				Attributes: entity.NewAttributes(
					"type", "전동스쿠터",
					"duration", "3시간",
					"includes", "도항선 왕복",
					"license_required", "원동기 면허 필수",
				),
			},
			{
				Title:  "[우도] 잠수함 체험 & 해안 순환버스 투어",
				Link:   "https://experiences.myrealtrip.com/products/3689012",
				Course: "성산 잠수함 → 우도 천진항 → 순환버스 4개 정류장 → 땅콩 아이스크림 카페",
				Price:  62000,
				Region: "제주시 우도면",
				Attributes: entity.NewAttributes(
					"type", "버스투어",
					"duration", "5시간",
					"includes", "잠수함 탑승",
					"guide_language", "한국어",
				),
			},
		},
	}
}

func udoRefined() entity.Catalog {
	return entity.Catalog{
		Filters: []entity.Filter{
			{Key: "type", Label: "투어 유형", Type: entity.FilterSingleSelect, Options: opts("전기자전거", "전동스쿠터")},
			{Key: "duration", Label: "소요 시간", Type: entity.FilterSingleSelect, Options: opts("3시간", "4시간")},
		},
		Items: []entity.TourItem{
			{
				Title:  "[우도] 전기자전거 섬 일주 투어 + 왕복 도항선",
				Link:   "https://experiences.myrealtrip.com/products/3410245",
				Course: "성산항 → 우도 천진항 → 서빈백사 → 우도봉 → 검멀레해변 → 하고수동해변",
				Price:  35000,
				Region: "제주시 우도면",
				Attributes: entity.NewAttributes(
					"type", "전기자전거",
					"duration", "4시간",
				),
			},
			{
				Title:  "[우도] 전동스쿠터 자유여행 패키지",
				Link:   "https://experiences.myrealtrip.com/products/3527718",
				Course: "우도 하우목동항 → 홍조단괴해빈 → 비양도(우도) → 우도등대공원",
				Price:  29000,
				Region: "제주시 우도면",
				Attributes: entity.NewAttributes(
					"type", "전동스쿠터",
					"duration", "3시간",
				),
			},
		},
	}
}

func seongsanCatalog() entity.Catalog {
	return entity.Catalog{
		Filters: []entity.Filter{
			{Key: "time_slot", Label: "출발 시간대", Type: entity.FilterSingleSelect, Options: opts("일출", "오전", "오후")},
			{Key: "transport", Label: "이동 수단", Type: entity.FilterSingleSelect, Options: opts("픽업 차량", "버스 포함")},
			{Key: "extras", Label: "추가 요소", Type: entity.FilterMultiSelect, Options: opts("조식 포함", "입장료 포함", "요트 탑승")},
		},
		Items: []entity.TourItem{
			{
				Title:  "[성산일출봉] 일출 트레킹 + 광치기해변 산책",
				Link:   "https://experiences.myrealtrip.com/products/3301187",
				Course: "숙소 픽업 → 성산일출봉 정상 일출 → 광치기해변 → 해장국 조식",
				Price:  42000,
				Region: "서귀포시 성산읍",
				Attributes: entity.NewAttributes(
					"time_slot", "일출",
					"transport", "픽업 차량",
					"extras", "조식 포함",
					"duration", "4시간",
				),
			},
			{
				Title:  "[성산일출봉] 동부 버스투어 - 섭지코지 & 성산일출봉",
				Link:   "https://experiences.myrealtrip.com/products/3154770",
				Course: "제주시 출발 → 함덕해변 → 성산일출봉 → 섭지코지 → 비자림",
				Price:  39000,
				Region: "서귀포시 성산읍",
				Attributes: entity.NewAttributes(
					"time_slot", "오전",
					"transport", "버스 포함",
					"extras", "입장료 포함",
					"duration", "9시간",
				),
			},
			{
				Title:  "[성산일출봉] 해녀 물질 공연 & 성산 요트 투어",
				Link:   "https://experiences.myrealtrip.com/products/3778254",
				Course: "성산 해녀의 집 공연 → 성산항 요트 승선 → 일출봉 해안 절벽 감상",
				Price:  68000,
				Region: "서귀포시 성산읍",
				Attributes: entity.NewAttributes(
					"time_slot", "오후",
					"transport", "버스 포함",
					"extras", "요트 탑승",
					"duration", "3시간",
				),
			},
		},
	}
}

func seongsanRefined() entity.Catalog {
	return entity.Catalog{
		Filters: []entity.Filter{
			{Key: "time_slot", Label: "출발 시간대", Type: entity.FilterSingleSelect, Options: opts("일출")},
			{Key: "extras", Label: "추가 요소", Type: entity.FilterMultiSelect, Options: opts("조식 포함")},
		},
		Items: []entity.TourItem{
			{
				Title:  "[성산일출봉] 일출 트레킹 + 광치기해변 산책",
				Link:   "https://experiences.myrealtrip.com/products/3301187",
				Course: "숙소 픽업 → 성산일출봉 정상 일출 → 광치기해변 → 해장국 조식",
				Price:  42000,
				Region: "서귀포시 성산읍",
				Attributes: entity.NewAttributes(
					"time_slot", "일출",
					"extras", "조식 포함",
				),
			},
		},
	}
}

func hallasanCatalog() entity.Catalog {
	return entity.Catalog{
		Filters: []entity.Filter{
			{Key: "trail", Label: "등반 코스", Type: entity.FilterSingleSelect, Options: opts("성판악", "영실", "어리목")},
			{Key: "difficulty", Label: "난이도", Type: entity.FilterSingleSelect, Options: opts("상", "중", "하")},
			{Key: "duration", Label: "소요 시간", Type: entity.FilterSingleSelect, Options: opts("4시간", "5시간", "9시간")},
		},
		Items: []entity.TourItem{
			{
				Title:  "[한라산] 성판악 코스 백록담 가이드 트레킹",
				Link:   "https://experiences.myrealtrip.com/products/3265503",
				Course: "성판악 탐방안내소 → 속밭대피소 → 진달래밭대피소 → 백록담 → 관음사 하산",
				Price:  55000,
				Region: "서귀포시 남원읍",
				Attributes: entity.NewAttributes(
					"trail", "성판악",
					"difficulty", "상",
					"duration", "9시간",
					"reservation", "탐방 예약 대행 포함",
				),
			},
			{
				Title:  "[한라산] 영실 코스 윗세오름 반나절 트레킹",
				Link:   "https://experiences.myrealtrip.com/products/3291046",
				Course: "영실 매표소 → 병풍바위 → 선작지왓 → 윗세오름 대피소",
				Price:  45000,
				Region: "서귀포시 하원동",
				Attributes: entity.NewAttributes(
					"trail", "영실",
					"difficulty", "중",
					"duration", "5시간",
					"reservation", "예약 불필요",
				),
			},
			{
				Title:  "[한라산] 어리목 코스 초보자 트레킹 + 왕복 픽업",
				Link:   "https://experiences.myrealtrip.com/products/3402219",
				Course: "제주시 픽업 → 어리목 탐방안내소 → 사제비동산 → 만세동산 전망대",
				Price:  49000,
				Region: "제주시 해안동",
				Attributes: entity.NewAttributes(
					"trail", "어리목",
					"difficulty", "하",
					"duration", "4시간",
					"reservation", "예약 불필요",
				),
			},
		},
	}
}

func hallasanRefined() entity.Catalog {
	return entity.Catalog{
		Filters: []entity.Filter{
			{Key: "trail", Label: "등반 코스", Type: entity.FilterSingleSelect, Options: opts("영실", "어리목")},
		},
		Items: []entity.TourItem{
			{
				Title:  "[한라산] 영실 코스 윗세오름 반나절 트레킹",
				Link:   "https://experiences.myrealtrip.com/products/3291046",
				Course: "영실 매표소 → 병풍바위 → 선작지왓 → 윗세오름 대피소",
				Price:  45000,
				Region: "서귀포시 하원동",
				Attributes: entity.NewAttributes(
					"trail", "영실",
					"difficulty", "중",
				),
			},
			{
				Title:  "[한라산] 어리목 코스 초보자 트레킹 + 왕복 픽업",
				Link:   "https://experiences.myrealtrip.com/products/3402219",
				Course: "제주시 픽업 → 어리목 탐방안내소 → 사제비동산 → 만세동산 전망대",
				Price:  49000,
				Region: "제주시 해안동",
				Attributes: entity.NewAttributes(
					"trail", "어리목",
					"difficulty", "하",
				),
			},
		},
	}
}

func hyeopjaeCatalog() entity.Catalog {
	return entity.Catalog{
		Filters: []entity.Filter{
			{Key: "activity", Label: "액티비티", Type: entity.FilterSingleSelect, Options: opts("카약", "스노클링", "SUP")},
			{Key: "level", Label: "난이도", Type: entity.FilterSingleSelect, Options: opts("초급", "중급")},
			{Key: "includes", Label: "포함 사항", Type: entity.FilterMultiSelect, Options: opts("사진 촬영", "장비 대여")},
		},
		Items: []entity.TourItem{
			{
				Title:  "[협재해변] 투명카약 & 비양도 선셋 투어",
				Link:   "https://experiences.myrealtrip.com/products/3512367",
				Course: "협재해변 집결 → 안전 교육 → 투명카약 1시간 → 비양도 선셋 포토타임",
				Price:  30000,
				Region: "제주시 한림읍",
				Attributes: entity.NewAttributes(
					"activity", "카약",
					"level", "초급",
					"includes", "사진 촬영",
					"duration", "2시간",
				),
			},
			{
				Title:  "[협재해변] 스노클링 체험 (장비 포함)",
				Link:   "https://experiences.myrealtrip.com/products/3520981",
				Course: "협재 다이빙샵 → 장비 착용 → 금능 포구 스노클링 → 샤워",
				Price:  25000,
				Region: "제주시 한림읍",
				Attributes: entity.NewAttributes(
					"activity", "스노클링",
					"level", "초급",
					"includes", "장비 대여",
					"duration", "2시간",
				),
			},
			{
				Title:  "[협재해변] SUP 패들보드 강습",
				Link:   "https://experiences.myrealtrip.com/products/3601452",
				Course: "이론 교육 → 해변 패들링 연습 → 협재 앞바다 SUP 투어",
				Price:  40000,
				Region: "제주시 한림읍",
				Attributes: entity.NewAttributes(
					"activity", "SUP",
					"level", "중급",
					"includes", "장비 대여",
					"duration", "3시간",
				),
			},
		},
	}
}

func hyeopjaeRefined() entity.Catalog {
	return entity.Catalog{
		Filters: []entity.Filter{
			{Key: "activity", Label: "액티비티", Type: entity.FilterSingleSelect, Options: opts("카약", "스노클링")},
		},
		Items: []entity.TourItem{
			{
				Title:  "[협재해변] 투명카약 & 비양도 선셋 투어",
				Link:   "https://experiences.myrealtrip.com/products/3512367",
				Course: "협재해변 집결 → 안전 교육 → 투명카약 1시간 → 비양도 선셋 포토타임",
				Price:  30000,
				Region: "제주시 한림읍",
				Attributes: entity.NewAttributes(
					"activity", "카약",
					"level", "초급",
				),
			},
			{
				Title:  "[협재해변] 스노클링 체험 (장비 포함)",
				Link:   "https://experiences.myrealtrip.com/products/3520981",
				Course: "협재 다이빙샵 → 장비 착용 → 금능 포구 스노클링 → 샤워",
				Price:  25000,
				Region: "제주시 한림읍",
				Attributes: entity.NewAttributes(
					"activity", "스노클링",
					"level", "초급",
				),
			},
		},
	}
}
