package rules

import "github.com/ppiankov/actornet/internal/model"

// defaultMechanisms is the shared mechanism priority list.
// Order matters: a span citing both funding and policy is a fiscal incentive.
func defaultMechanisms() []NamedCues {
	return []NamedCues{
		{Name: "fiscal_incentive", Cues: Cues{"财政", "补贴", "资金", "奖励", "拨款", "subsidy", "subsidies", "fund", "funded", "grant", "grants", "fiscal"}},
		{Name: "policy_instrument", Cues: Cues{"政策", "法规", "文件", "规定", "条例", "policy", "regulation", "law"}},
		{Name: "administrative_command", Cues: Cues{"行政", "命令", "下达", "考核", "部署", "administrative", "directive", "order"}},
		{Name: "market_incentive", Cues: Cues{"市场", "投资", "价格", "订单", "market", "investment", "price"}},
		{Name: "discursive_persuasion", Cues: Cues{"宣传", "培训", "教育", "说服", "动员", "publicity", "training", "campaign", "education"}},
		{Name: "organizational_coordination", Cues: Cues{"会议", "小组", "协会", "合作社", "机制", "meeting", "committee", "association"}},
	}
}

const defaultMechanismName = "general_mechanism"

func defaultLibraries() []Library {
	return []Library{
		{
			Phase: model.PhaseProblematization,
			Rules: []PatternRule{
				{
					Category:          "problem_definition",
					TriggerCues:       Cues{"问题", "困境", "难题", "挑战", "瓶颈", "短板", "problem", "challenge", "bottleneck", "dilemma"},
					BaseEffectiveness: 0.6,
					Characteristics:   []string{"problem_framing", "agenda_setting"},
				},
				{
					Category:          "obligatory_passage_point",
					TriggerCues:       Cues{"必经之路", "唯一途径", "关键环节", "必须通过", "前提条件", "obligatory passage", "only way", "prerequisite"},
					BaseEffectiveness: 0.7,
					Characteristics:   []string{"indispensability", "centrality"},
				},
				{
					Category:          "actor_identification",
					TriggerCues:       Cues{"利益相关者", "相关方", "参与主体", "各方", "stakeholder", "stakeholders", "parties involved"},
					BaseEffectiveness: 0.5,
					Characteristics:   []string{"actor_mapping"},
				},
				{
					Category:          "interest_definition",
					TriggerCues:       Cues{"共同利益", "共同目标", "诉求", "需求", "shared interest", "common goal", "needs"},
					BaseEffectiveness: 0.6,
					Characteristics:   []string{"interest_alignment"},
				},
			},
			Mechanisms:       defaultMechanisms(),
			DefaultMechanism: defaultMechanismName,
		},
		{
			Phase: model.PhaseInteressement,
			Rules: []PatternRule{
				{
					Category:          "institutional_sponsorship",
					TriggerCues:       Cues{"财政补贴", "补贴", "奖励", "专项资金", "扶持", "政策支持", "subsidy", "subsidies", "grant", "grants", "incentive", "incentives", "funding"},
					BaseEffectiveness: 0.7,
					Characteristics:   []string{"material_incentive", "state_sponsorship"},
				},
				{
					Category:          "policy_device",
					TriggerCues:       Cues{"政策", "文件", "规定", "法规", "条例", "policy", "regulation", "ordinance"},
					BaseEffectiveness: 0.6,
					Characteristics:   []string{"rule_setting"},
				},
				{
					Category:          "persuasion",
					TriggerCues:       Cues{"宣传", "说服", "动员", "培训", "讲座", "publicity", "persuade", "persuaded", "persuasion", "training"},
					BaseEffectiveness: 0.5,
					Characteristics:   []string{"discursive_framing"},
				},
				{
					Category:          "alliance_locking",
					TriggerCues:       Cues{"合作协议", "签约", "协议", "合同", "入股", "agreement", "agreements", "contract", "contracts", "memorandum"},
					BaseEffectiveness: 0.65,
					Characteristics:   []string{"binding_commitment"},
				},
			},
			Mechanisms:       defaultMechanisms(),
			DefaultMechanism: defaultMechanismName,
		},
		{
			Phase: model.PhaseEnrollment,
			Rules: []PatternRule{
				{
					Category:          "role_assignment",
					TriggerCues:       Cues{"分工", "负责", "角色", "职责", "牵头", "responsible for", "role", "in charge"},
					BaseEffectiveness: 0.6,
					Characteristics:   []string{"role_definition"},
				},
				{
					Category:          "negotiation",
					TriggerCues:       Cues{"协商", "谈判", "讨价还价", "沟通", "座谈", "negotiate", "negotiated", "negotiation", "consultation"},
					BaseEffectiveness: 0.55,
					Characteristics:   []string{"bargaining"},
				},
				{
					Category:          "commitment",
					TriggerCues:       Cues{"承诺", "加入", "签署", "认可", "接受", "commit", "committed", "commits", "join", "joined", "joins", "accept", "accepted"},
					BaseEffectiveness: 0.65,
					Characteristics:   []string{"role_acceptance"},
				},
				{
					Category:          "resource_pledge",
					TriggerCues:       Cues{"出资", "投入", "捐赠", "提供", "invest", "invested", "contribute", "contributed", "donate", "donated"},
					BaseEffectiveness: 0.6,
					Characteristics:   []string{"resource_commitment"},
				},
			},
			Mechanisms:       defaultMechanisms(),
			DefaultMechanism: defaultMechanismName,
		},
		{
			Phase: model.PhaseMobilization,
			Rules: []PatternRule{
				{
					Category:          "administrative_mobilization",
					TriggerCues:       Cues{"行政", "下达", "部署", "指令", "考核", "政策", "财政", "administrative", "directive", "deploy", "deployed"},
					BaseEffectiveness: 0.7,
					Characteristics:   []string{"hierarchical_command"},
				},
				{
					Category:          "market_mobilization",
					TriggerCues:       Cues{"市场", "投资", "订单", "价格", "收益", "market", "investment", "revenue"},
					BaseEffectiveness: 0.6,
					Characteristics:   []string{"economic_incentive"},
				},
				{
					Category:          "social_mobilization",
					TriggerCues:       Cues{"群众", "志愿", "参与", "动员", "社区", "volunteer", "volunteers", "volunteered", "mobilize", "mobilized", "community", "participation"},
					BaseEffectiveness: 0.6,
					Characteristics:   []string{"mass_participation"},
				},
				{
					Category:          "representation",
					TriggerCues:       Cues{"代表", "发言人", "带头人", "领头", "示范户", "representative", "representatives", "spokesperson", "leader", "leaders"},
					BaseEffectiveness: 0.55,
					Characteristics:   []string{"spokesperson"},
				},
			},
			Mechanisms:       defaultMechanisms(),
			DefaultMechanism: defaultMechanismName,
		},
	}
}
