package rules

import "github.com/ppiankov/actornet/internal/model"

func defaultLexicon() Lexicon {
	return Lexicon{
		ActorLabels: []ActorLabel{
			{Label: "政府", Type: model.ActorGovernment},
			{Label: "部门", Type: model.ActorGovernment},
			{Label: "村委会", Type: model.ActorGovernment},
			{Label: "企业", Type: model.ActorEnterprise},
			{Label: "公司", Type: model.ActorEnterprise},
			{Label: "厂商", Type: model.ActorEnterprise},
			{Label: "群众", Type: model.ActorPublic},
			{Label: "公众", Type: model.ActorPublic},
			{Label: "村民", Type: model.ActorPublic},
			{Label: "居民", Type: model.ActorPublic},
			{Label: "农户", Type: model.ActorPublic},
			{Label: "志愿者", Type: model.ActorPublic},
			{Label: "专家", Type: model.ActorExpert},
			{Label: "学者", Type: model.ActorExpert},
			{Label: "科研机构", Type: model.ActorExpert},
			{Label: "高校", Type: model.ActorExpert},
			{Label: "协会", Type: model.ActorOther},
			{Label: "合作社", Type: model.ActorOther},
			{Label: "社会组织", Type: model.ActorOther},
			{Label: "government", Type: model.ActorGovernment},
			{Label: "ministry", Type: model.ActorGovernment},
			{Label: "authorities", Type: model.ActorGovernment},
			{Label: "enterprise", Type: model.ActorEnterprise},
			{Label: "enterprises", Type: model.ActorEnterprise},
			{Label: "company", Type: model.ActorEnterprise},
			{Label: "companies", Type: model.ActorEnterprise},
			{Label: "business", Type: model.ActorEnterprise},
			{Label: "residents", Type: model.ActorPublic},
			{Label: "villagers", Type: model.ActorPublic},
			{Label: "citizens", Type: model.ActorPublic},
			{Label: "farmers", Type: model.ActorPublic},
			{Label: "public", Type: model.ActorPublic},
			{Label: "expert", Type: model.ActorExpert},
			{Label: "experts", Type: model.ActorExpert},
			{Label: "scholars", Type: model.ActorExpert},
			{Label: "researchers", Type: model.ActorExpert},
			{Label: "university", Type: model.ActorExpert},
			{Label: "association", Type: model.ActorOther},
			{Label: "cooperative", Type: model.ActorOther},
			{Label: "organization", Type: model.ActorOther},
		},
		Positive: Cues{"成功", "有效", "显著", "积极", "广泛", "大力", "顺利", "提升", "success", "effective", "significant", "strong", "improved"},
		Negative: Cues{"失败", "困难", "阻力", "抵制", "不足", "缓慢", "反对", "failed", "failure", "resistance", "difficult", "insufficient", "slow", "weak"},
		Mobilization: LevelCues{
			High:   Cues{"高度", "深度", "全面", "充分", "广泛", "high", "deep", "fully", "extensive"},
			Medium: Cues{"积极", "主动", "活跃", "active", "proactive"},
			Low:    Cues{"初步", "浅层", "有限", "少数", "initial", "shallow", "limited"},
		},
		Contribution: LevelCues{
			High:   Cues{"主导", "核心", "大量", "重大", "关键", "leading", "core", "major", "key"},
			Medium: Cues{"参与", "配合", "支持", "participate", "participated", "support", "supported", "supports", "assist", "assisted"},
			Low:    Cues{"少量", "边缘", "次要", "minor", "marginal"},
		},
		Implementation: ImplementationCues{
			Methods: []NamedCues{
				{Name: "pilot", Cues: Cues{"试点", "示范", "pilot", "demonstration"}},
				{Name: "training", Cues: Cues{"培训", "讲座", "training", "workshop"}},
				{Name: "subsidy", Cues: Cues{"补贴", "奖励", "subsidy", "subsidies", "grant", "grants"}},
				{Name: "campaign", Cues: Cues{"宣传", "动员", "campaign", "publicity"}},
				{Name: "contract", Cues: Cues{"协议", "合同", "签约", "contract", "contracts", "agreement", "agreements"}},
			},
			DefaultMethod: "direct_intervention",
			Scales: []NamedCues{
				{Name: "national", Cues: Cues{"全国", "国家级", "中央", "national", "nationwide"}},
				{Name: "regional", Cues: Cues{"全省", "省级", "全市", "市级", "区域", "regional", "provincial", "citywide"}},
				{Name: "local", Cues: Cues{"县", "乡", "镇", "村", "社区", "local", "village", "county", "community"}},
			},
			DefaultScale: "local",
			Resources: []NamedCues{
				{Name: "funding", Cues: Cues{"资金", "财政", "补贴", "拨款", "fund", "funded", "budget"}},
				{Name: "land", Cues: Cues{"土地", "用地", "land"}},
				{Name: "technology", Cues: Cues{"技术", "设备", "平台", "technology", "equipment", "platform"}},
				{Name: "personnel", Cues: Cues{"人员", "人才", "干部", "队伍", "staff", "personnel", "cadres"}},
				{Name: "information", Cues: Cues{"信息", "数据", "information", "data"}},
			},
		},
		Flows: FlowCues{
			Indicators: Cues{"分配", "配置", "转移", "下拨", "拨付", "拨款", "流向", "调配", "distribution", "distribute", "distributed", "allocation", "allocate", "allocated", "transfer"},
			Directions: []NamedCues{
				{Name: string(model.FlowBidirectional), Cues: Cues{"双向", "相互", "互相", "two-way", "mutual", "reciprocal"}},
				{Name: string(model.FlowBottomUp), Cues: Cues{"自下而上", "上报", "反馈", "bottom-up", "upward"}},
				{Name: string(model.FlowHorizontal), Cues: Cues{"横向", "之间", "共享", "互助", "horizontal", "between", "peer"}},
				{Name: string(model.FlowTopDown), Cues: Cues{"自上而下", "下拨", "下达", "拨付", "top-down", "downward"}},
			},
			// Source narratives rarely name a direction; state-led allocation is the usual case
			DefaultDirection: model.FlowTopDown,
			Mechanisms: []NamedCues{
				{Name: string(model.FlowFiscalTransfer), Cues: Cues{"财政", "拨款", "转移支付", "补贴", "fiscal", "subsidy", "subsidies", "budget"}},
				{Name: string(model.FlowMarketAllocation), Cues: Cues{"市场", "价格", "交易", "market", "price", "trade"}},
				{Name: string(model.FlowAdministrativeAllocation), Cues: Cues{"行政", "指令", "调配", "统筹", "administrative", "directive", "assign", "assigned"}},
			},
			DefaultMechanism: model.FlowAdministrativeAllocation,
			HighVolume:       Cues{"大量", "巨额", "大规模", "亿", "large", "massive", "substantial"},
			LowVolume:        Cues{"少量", "小额", "有限", "small", "limited", "modest"},
		},
		Support:  Cues{"支持", "赞成", "同意", "拥护", "欢迎", "support", "supported", "supports", "agree", "agreed", "endorse", "endorsed", "welcome", "welcomed"},
		Oppose:   Cues{"反对", "抵制", "拒绝", "不支持", "不同意", "抗议", "oppose", "opposed", "opposes", "resist", "resisted", "reject", "rejected", "refuse", "refused", "protest", "protested"},
		Conflict: Cues{"冲突", "矛盾", "分歧", "争议", "纠纷", "conflict", "dispute", "disagreement", "tension"},
	}
}
