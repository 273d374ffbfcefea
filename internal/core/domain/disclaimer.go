package domain

import "strings"

// Disclaimers shown under every delivered answer, one per language.
var Disclaimers = []string{
	"※この回答は参考情報です。最終的な判断・公式回答は、必ずプログラムコーディネーター（事務局）に確認してください。",
	"Note: This answer is for reference only. For an official and final answer, please confirm with the program coordinator (office).",
	"提示：本回答仅供参考。最终判断与正式答复请务必向项目协调员（事务局）确认。",
	"안내: 이 답변은 참고용입니다. 최종 판단 및 공식 안내는 반드시 프로그램 코디네이터(사무국)에게 확인해 주세요。",
}

// ScopeNote states which programmes the assistant covers.
const ScopeNote = "RSJP / RWJP only. We cannot answer questions about other Ritsumeikan programs."

// DisclaimerBlock returns the disclaimers one per line.
func DisclaimerBlock() string {
	return strings.Join(Disclaimers, "\n")
}
