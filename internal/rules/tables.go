package rules

import "github.com/ppiankov/actornet/internal/model"

func defaultNetworkCues() NetworkCues {
	return NetworkCues{
		Commitment:     Cues{"承诺", "长期", "坚持", "信任", "认同", "commitment", "long-term", "trust", "loyal"},
		Connection:     Cues{"合作", "联系", "网络", "伙伴", "联合", "对接", "cooperation", "partnership", "network", "linkage", "connect", "connected"},
		GoalAlignment:  Cues{"共同目标", "共识", "一致", "共同愿景", "目标统一", "consensus", "shared goal", "common goal", "aligned"},
		Coordination:   Cues{"协调", "统筹", "联席会议", "协同", "机制", "coordinate", "coordinated", "coordination", "joint meeting", "mechanism"},
		Centralization: Cues{"主导", "牵头", "核心", "统一领导", "集中", "lead", "central", "dominant", "core"},
	}
}

func defaultPowerCues() PowerCues {
	return PowerCues{
		Institutional: Cues{"政策", "制度", "法规", "权力", "审批", "行政", "policy", "regulation", "authority", "institution"},
		Discursive:    Cues{"宣传", "话语", "舆论", "媒体", "叙事", "报道", "publicity", "discourse", "media", "narrative"},
		Technical:     Cues{"技术", "标准", "专利", "平台", "数据", "technology", "standard", "patent", "platform"},
		Symbolic:      Cues{"荣誉", "称号", "表彰", "品牌", "形象", "示范", "honor", "award", "brand", "reputation", "symbol"},
	}
}

func defaultBlackBoxes() []BlackBoxRule {
	return []BlackBoxRule{
		{
			Type:               model.BlackBoxTechnical,
			FormationMechanism: "standardization",
			Indicators:         Cues{"技术标准", "标准化", "平台", "系统", "技术规范", "standard", "platform", "system", "protocol"},
		},
		{
			Type:               model.BlackBoxInstitutional,
			FormationMechanism: "institutionalization",
			Indicators:         Cues{"制度化", "常态化", "长效机制", "规章", "法规", "制度", "institutionalize", "institutionalized", "routine", "regulation", "rule"},
		},
		{
			Type:               model.BlackBoxNetwork,
			FormationMechanism: "alliance_consolidation",
			Indicators:         Cues{"联盟", "合作网络", "长期合作", "稳定合作", "利益共同体", "alliance", "consortium", "long-term partnership", "network"},
		},
	}
}

func defaultTimelines() []Timeline {
	return []Timeline{
		{
			Phase: model.PhaseProblematization,
			Stages: []TimelineStage{
				{
					ID:              "problem_identification",
					Cues:            Cues{"发现问题", "调研", "摸底", "survey", "identify the problem"},
					Objectives:      []string{"establish the problem definition"},
					Activities:      []string{"field survey", "baseline assessment"},
					DefaultDuration: "1-2 months",
				},
				{
					ID:              "actor_mapping",
					Cues:            Cues{"走访", "梳理", "利益相关者", "stakeholder mapping", "identify actors"},
					Objectives:      []string{"identify the actors concerned"},
					Activities:      []string{"interviews", "stakeholder listing"},
					DefaultDuration: "2-4 weeks",
				},
				{
					ID:              "passage_point_definition",
					Cues:            Cues{"必经之路", "关键环节", "唯一途径", "obligatory passage", "only way"},
					Objectives:      []string{"make the initiator indispensable"},
					Activities:      []string{"solution framing"},
					DefaultDuration: "2-4 weeks",
				},
				{
					ID:              "interest_framing",
					Cues:            Cues{"共同利益", "共同目标", "诉求", "shared interest", "common goal"},
					Objectives:      []string{"tie actor interests to the solution"},
					Activities:      []string{"interest articulation"},
					DefaultDuration: "1 month",
				},
			},
		},
		{
			Phase: model.PhaseInteressement,
			Stages: []TimelineStage{
				{
					ID:              "device_design",
					Cues:            Cues{"方案", "设计", "制定", "规划", "plan", "design", "draft"},
					Objectives:      []string{"design interessement devices"},
					Activities:      []string{"plan drafting"},
					DefaultDuration: "1 month",
				},
				{
					ID:              "incentive_deployment",
					Cues:            Cues{"补贴", "奖励", "扶持", "subsidy", "subsidies", "incentive", "incentives", "grant", "grants"},
					Objectives:      []string{"attract actors into the proposed roles"},
					Activities:      []string{"subsidy disbursement", "reward schemes"},
					DefaultDuration: "3-6 months",
				},
				{
					ID:              "alliance_locking",
					Cues:            Cues{"签约", "协议", "合同", "agreement", "agreements", "contract", "contracts", "sign", "signed"},
					Objectives:      []string{"lock actors into the alliance"},
					Activities:      []string{"contract signing"},
					DefaultDuration: "1-2 months",
				},
				{
					ID:              "competitor_displacement",
					Cues:            Cues{"替代", "取代", "排除", "竞争", "replace", "replaced", "displace", "compete", "competed"},
					Objectives:      []string{"cut competing associations"},
					Activities:      []string{"alternative exclusion"},
					DefaultDuration: "3 months",
				},
			},
		},
		{
			Phase: model.PhaseEnrollment,
			Stages: []TimelineStage{
				{
					ID:              "role_definition",
					Cues:            Cues{"分工", "职责", "角色", "role", "responsibility"},
					Objectives:      []string{"define interrelated roles"},
					Activities:      []string{"task division"},
					DefaultDuration: "2-4 weeks",
				},
				{
					ID:              "negotiation",
					Cues:            Cues{"协商", "谈判", "沟通", "negotiate", "negotiated", "negotiation", "consult", "consulted"},
					Objectives:      []string{"settle the terms of participation"},
					Activities:      []string{"multilateral negotiation"},
					DefaultDuration: "1-2 months",
				},
				{
					ID:              "commitment_securing",
					Cues:            Cues{"承诺", "签署", "加入", "commit", "committed", "commits", "sign up", "join", "joined", "joins"},
					Objectives:      []string{"secure formal commitments"},
					Activities:      []string{"commitment signing"},
					DefaultDuration: "1 month",
				},
				{
					ID:              "role_acceptance",
					Cues:            Cues{"认可", "接受", "履行", "到位", "accept", "accepted", "fulfil", "take up"},
					Objectives:      []string{"confirm roles are taken up"},
					Activities:      []string{"role performance review"},
					DefaultDuration: "3 months",
				},
			},
		},
		{
			Phase: model.PhaseMobilization,
			Stages: []TimelineStage{
				{
					ID:              "resource_consolidation",
					Cues:            Cues{"资源整合", "整合资源", "筹集", "筹措", "集中资源", "pool resources", "resource integration", "fundraising"},
					Objectives:      []string{"concentrate allocable resources", "secure funding channels"},
					Activities:      []string{"fund raising", "asset pooling"},
					DefaultDuration: "1-3 months",
				},
				{
					ID:              "network_activation",
					Cues:            Cues{"启动", "动员大会", "激活", "发动", "launch", "launched", "kick off", "activate", "activated"},
					Objectives:      []string{"activate enrolled actors", "announce the shared agenda"},
					Activities:      []string{"launch meeting", "task assignment"},
					DefaultDuration: "2-4 weeks",
				},
				{
					ID:              "collective_action",
					Cues:            Cues{"集体行动", "共同行动", "全面推进", "联合行动", "collective action", "joint action"},
					Objectives:      []string{"execute coordinated tasks"},
					Activities:      []string{"joint implementation", "progress supervision"},
					DefaultDuration: "3-12 months",
				},
				{
					ID:              "stabilization",
					Cues:            Cues{"常态化", "长效机制", "巩固", "固化", "制度化", "stabilize", "stabilized", "institutionalize", "institutionalized", "consolidate gains"},
					Objectives:      []string{"turn the network into a routine"},
					Activities:      []string{"rule codification", "performance review"},
					DefaultDuration: "6-12 months",
				},
			},
		},
	}
}

func defaultConnectives() Cues {
	return Cues{"首先", "随后", "接着", "然后", "之后", "其次", "最后", "最终", "此后", "then", "subsequently", "afterwards", "after that", "next", "finally", "later"}
}

func defaultEvents() []EventRule {
	return []EventRule{
		{Name: "动员大会", Significance: model.SignificanceCritical, Impact: "publicly activates the enrolled network"},
		{Name: "启动仪式", Significance: model.SignificanceMajor, Impact: "marks the start of collective action"},
		{Name: "签约仪式", Significance: model.SignificanceMajor, Impact: "formalizes alliance commitments"},
		{Name: "试点验收", Significance: model.SignificanceMajor, Impact: "certifies the pilot as a reproducible model"},
		{Name: "现场会", Significance: model.SignificanceMinor, Impact: "diffuses practice to peer units"},
		{Name: "表彰大会", Significance: model.SignificanceMinor, Impact: "confers symbolic rewards"},
		{Name: "mobilization rally", Significance: model.SignificanceCritical, Impact: "publicly activates the enrolled network"},
		{Name: "launch ceremony", Significance: model.SignificanceMajor, Impact: "marks the start of collective action"},
		{Name: "signing ceremony", Significance: model.SignificanceMajor, Impact: "formalizes alliance commitments"},
		{Name: "award ceremony", Significance: model.SignificanceMinor, Impact: "confers symbolic rewards"},
	}
}

func defaultLocalization() []LocalizationRule {
	return []LocalizationRule{
		{
			Tag:             "hierarchical_administration",
			CulturalContext: "target-responsibility system driven through the administrative hierarchy",
			Keywords:        Cues{"层层", "上级", "下级", "考核", "责任制", "目标责任", "行政命令", "一把手", "领导小组"},
		},
		{
			Tag:             "mass_campaign",
			CulturalContext: "campaign-style governance with concentrated, time-boxed drives",
			Keywords:        Cues{"运动", "专项行动", "攻坚", "会战", "百日", "集中整治"},
		},
		{
			Tag:             "demonstration_project",
			CulturalContext: "demonstration sites and pilot-to-rollout diffusion",
			Keywords:        Cues{"示范", "试点", "样板", "典型", "经验推广", "标杆"},
		},
		{
			Tag:             "social_mobilization",
			CulturalContext: "mass-line social mobilization through cadres, party members and volunteers",
			Keywords:        Cues{"群众路线", "动员", "志愿", "党员", "群众参与", "宣传", "发动群众"},
		},
	}
}
