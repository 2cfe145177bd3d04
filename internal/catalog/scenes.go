// internal/catalog/scenes.go
package catalog

import (
	"github.com/cat-xierluo/falvren2025/internal/models"
)

func numRange(min, max int) *models.NumberRange {
	return &models.NumberRange{Min: min, Max: max}
}

// defaultScenes 内置场景库
func defaultScenes() []models.Scene {
	return []models.Scene{
		// ===== 沟通地狱（电话/微信/邮件）=====
		{
			ID:              "phone_late_calls",
			Category:        models.CategoryPhone,
			Template:        "你这一年接到最多的电话\n发生在 **晚上 9:00** 以后",
			HasRandomNumber: true,
			NumberRange:     numRange(156, 289),
			NumberSuffix:    "通",
			SoulText:        "有些电话\n你还没接起来\n就已经知道会聊很久",
		},
		{
			ID:              "phone_simple_consult",
			Category:        models.CategoryPhone,
			Template:        "通话时间最长的一次\n开头是：\n\n\"我就简单咨询一下\"",
			Subtext:         "实际通话时长：{number} 分钟",
			HasRandomNumber: true,
			NumberRange:     numRange(47, 89),
			SoulText:        "简单咨询\n从来都不简单",
		},
		{
			ID:       "phone_friend_said",
			Category: models.CategoryPhone,
			Template: "你听到最多的一句话是：\n\n\"我朋友说这个不复杂\"",
			Subtext:  "朋友的判断标准\n通常只有两个：难不难、贵不贵",
			SoulText: "你已经学会\n在心里默数三秒",
		},
		{
			ID:              "phone_no_conclusion",
			Category:        models.CategoryPhone,
			Template:        "有些电话你一接起来\n就已经知道\n这通不会有明确结论",
			HasRandomNumber: true,
			NumberRange:     numRange(23, 67),
			NumberSuffix:    "通",
			Subtext:         "但你还是会认真听完",
			SoulText:        "因为这是职业",
		},
		{
			ID:              "phone_payment_prediction",
			Category:        models.CategoryPhone,
			Template:        "你已经学会\n在对方说第三句话之前\n判断他会不会付费",
			Subtext:         "准确率约 {number}%",
			HasRandomNumber: true,
			NumberRange:     numRange(78, 94),
			SoulText:        "第六感\n是工作经验的别名",
		},
		{
			ID:       "phone_check_calendar",
			Category: models.CategoryPhone,
			Template: "有几次你接起电话\n却下意识地\n先看了一眼日历",
			Subtext:  "条件反射级别的动作",
			SoulText: "你在确认\n这是不是一个\n可以说\"不方便\"的日子",
		},
		{
			ID:       "phone_later_contact",
			Category: models.CategoryPhone,
			Template: "你对\"回头再联系\"的理解\n已经非常具体",
			Subtext:  "通常意味着：不会再联系",
			SoulText: "这不是冷漠\n这是经验",
		},
		{
			ID:              "phone_wechat_unread",
			Category:        models.CategoryPhone,
			Template:        "你的微信未读消息\n最高峰值达到 **{number}** 条",
			HasRandomNumber: true,
			NumberRange:     numRange(500, 2000),
			Subtext:         "你已经学会选择性已读",
			SoulText:        "未读不是没看\n是还没想好怎么回",
		},

		// ===== 12368 / 系统沟通 =====
		{
			ID:              "system_12368_calls",
			Category:        models.CategorySystem12368,
			Template:        "你这一年拨打了 **{number}** 次 12368\n\n获得最多的回应是：\n「对方忙碌中，请稍后再拨」",
			HasRandomNumber: true,
			NumberRange:     numRange(500, 1000),
			Subtext:         "平均每天 {daily} 次",
			SoulText:        "你和 12368 的关系\n比你和很多当事人都稳定",
			BusinessArea:    models.BusinessLitigation,
		},
		{
			ID:           "system_12368_hold_music",
			Category:     models.CategorySystem12368,
			Template:     "你已经记住了\n12368 的等待提示音",
			Subtext:      "甚至偶尔会哼出来",
			SoulText:     "它不回你电话\n但它至少每天都在",
			BusinessArea: models.BusinessLitigation,
		},
		{
			ID:              "system_12368_connection",
			Category:        models.CategorySystem12368,
			Template:        "年度 12368 接通率\n\n**{number}%**",
			HasRandomNumber: true,
			NumberRange:     numRange(18, 36),
			Subtext:         "系统检测到你仍然会继续拨打",
			SoulText:        "接通率很低\n但你还是打",
			BusinessArea:    models.BusinessLitigation,
		},
		{
			ID:              "system_ddcx_calls",
			Category:        models.CategorySystem12368,
			Template:        "你这一年拨打了 **{number}** 次 12368\n\n主要用于查询案件进度",
			HasRandomNumber: true,
			NumberRange:     numRange(500, 1500),
			Subtext:         "主要是帮当事人查",
			SoulText:        "法院系统\n还是有用的",
			BusinessArea:    models.BusinessNonLitigation,
		},
		{
			ID:           "system_ddcx_rarely",
			Category:     models.CategorySystem12368,
			Template:     "你几乎不拨打 12368\n\n因为你的工作\n主要是和交易对手、监管机构打交道",
			Subtext:      "法院系统对你来说\n比较陌生",
			SoulText:     "你的战场在谈判桌\n不在法庭",
			BusinessArea: models.BusinessNonLitigation,
			Negative:     true,
		},

		// ===== 深夜节点 =====
		{
			ID:            "late_night_email",
			Category:      models.CategoryLateNight,
			Template:      "你最晚的一次工作时间\n是 **凌晨 {time}**\n\n那天你发出了一封邮件",
			HasRandomTime: true,
			HasRandomName: true,
			Subtext:       "收件人：{name}",
			SoulText:      "你已经不记得\n{name} 是客户、同事\n还是你的人生见证者",
		},
		{
			ID:       "late_night_habit",
			Category: models.CategoryLateNight,
			Template: "那一刻你已经不太确定\n自己是在工作\n还是在完成一种惯性",
			Subtext:  "身体记得\n脑子已经麻木",
			SoulText: "有些夜晚\n不属于今天\n也不属于明天",
		},
		{
			ID:       "late_night_drink",
			Category: models.CategoryLateNight,
			Template: "你在深夜喝过最多的是\n\n**{cityDrink}**",
			Subtext:  "通常在加班时",
			SoulText: "它让你保持清醒\n或者至少看起来清醒",
		},
		{
			ID:              "late_night_delivery",
			Category:        models.CategoryLateNight,
			Template:        "你在凌晨点过 **{number}** 次外卖",
			HasRandomNumber: true,
			NumberRange:     numRange(12, 45),
			Subtext:         "骑手已经认识你了",
			SoulText:        "胃饿的时候\n不分时间",
		},
		{
			ID:              "late_night_sunrise",
			Category:        models.CategoryLateNight,
			Template:        "你有 **{number}** 次\n是看到日出之后才睡的",
			HasRandomNumber: true,
			NumberRange:     numRange(3, 12),
			Subtext:         "日出很好看\n但你太累了",
			SoulText:        "那不是熬夜\n是另一种作息",
		},

		// ===== 出差与异地 =====
		{
			ID:              "travel_cities",
			Category:        models.CategoryTravel,
			Template:        "你今年因为工作\n去过 **{number}** 个完全没来得及看的城市",
			HasRandomNumber: true,
			NumberRange:     numRange(3, 8),
			HasRandomCity:   true,
			Subtext:         "最熟悉的：高铁站和酒店",
			SoulText:        "你对城市的记忆\n主要来自：高铁站和酒店",
		},
		{
			ID:       "travel_suzhou_easter_egg",
			Category: models.CategoryTravel,
			Template: "你今年最常吐槽的是：\n\n**{easterEgg}**",
			Subtext:  "没有机场的苏州人\n都知道这是什么意思",
			SoulText: "机场\n可以没有\n梗必须有",
		},
		{
			ID:       "travel_hotel_work",
			Category: models.CategoryTravel,
			Template: "有一次出差\n你在酒店改文件\n改到忘了这是哪座城市",
			Subtext:  "窗外的风景\n你完全没注意过",
			SoulText: "所有酒店房间\n看起来都一样",
		},
		{
			ID:       "travel_hotel_criteria",
			Category: models.CategoryTravel,
			Template: "你判断一家酒店好不好\n的标准是：\n\n**网速稳不稳**",
			Subtext:  "Wi-Fi 信号满格\n比早餐丰富重要",
			SoulText: "五星级不重要\nWi-Fi 信号才重要",
		},
		{
			ID:       "travel_landmark",
			Category: models.CategoryTravel,
			Template: "你最熟悉的城市地标\n是打印店的位置",
			Subtext:  "以及 24 小时便利店",
			SoulText: "这些地方\n比景点重要",
		},
		{
			ID:              "travel_photos",
			Category:        models.CategoryTravel,
			Template:        "有些照片你没发朋友圈\n因为那天你太累了",
			HasRandomNumber: true,
			NumberRange:     numRange(15, 45),
			NumberSuffix:    "张",
			Subtext:         "有些风景只能自己看",
			SoulText:        "它们还在相册里\n等一个不会来的\"有空\"",
		},
		{
			ID:              "travel_high_speed_rail",
			Category:        models.CategoryTravel,
			Template:        "你今年坐了 **{number}** 趟高铁",
			HasRandomNumber: true,
			NumberRange:     numRange(48, 60),
			Subtext:         "已经能闭眼找到充电口的位置",
			SoulText:        "高铁座位\n比你家沙发还熟悉",
		},
		{
			ID:       "travel_airport",
			Category: models.CategoryTravel,
			Template: "你对机场的熟悉程度\n已经超过了家附近的商场",
			Subtext:  "你知道哪家的安检队伍最快",
			SoulText: "安检员已经认识你了",
		},

		// ===== 文书/文件系统 =====
		{
			ID:              "documents_word_count",
			Category:        models.CategoryDocuments,
			Template:        "你今年创建了 **{number}** 个 Word 文件\n\n没有任何一个\n真正是\"最终版\"",
			HasRandomNumber: true,
			NumberRange:     numRange(1000, 2000),
			Subtext:         "平均每天 {number} 个",
			SoulText:        "律师的\"最终版\"\n是一种精神状态\n不是文件名",
		},
		{
			ID:                "documents_filename",
			Category:          models.CategoryDocuments,
			Template:          "你最常见的文件名是：\n\n**{filename}**",
			HasRandomFileName: true,
			Subtext:           "它躺在你的回收站里",
			SoulText:          "文件名会暴露\n你的焦虑程度",
		},
		{
			ID:       "documents_outsider",
			Category: models.CategoryDocuments,
			Template: "你已经能一眼看出\n一份文件\n是不是给外行看的",
			Subtext:  "外行看的文件\n格式更花哨",
			SoulText: "格式会说话",
		},
		{
			ID:       "documents_one_more",
			Category: models.CategoryDocuments,
			Template: "你对\"再补一个材料\"的理解\n不再是数量\n而是心理准备",
			Subtext:  "通常意味着：再补 5-10 个",
			SoulText: "补材料\n是一个动词",
		},
		{
			ID:       "documents_track_changes",
			Category: models.CategoryDocuments,
			Template: "你开始用颜色\n区分不同版本的修改痕迹",
			Subtext:  "红色是客户的\n蓝色是自己的\n绿色是领导的",
			SoulText: "修订痕迹\n是权力的可视化",
		},
		{
			ID:       "documents_find_file",
			Category: models.CategoryDocuments,
			Template: "你最熟练的技能之一\n是在三分钟内\n找到一份两年前的文件",
			Subtext:  "归档混乱\n但你能找到",
			SoulText: "这不是记忆力\n是生存本能",
		},
		{
			ID:              "documents_ctrl_s",
			Category:        models.CategoryDocuments,
			Template:        "你按 Ctrl+S 的频率\n平均每 **{number}** 秒一次",
			HasRandomNumber: true,
			NumberRange:     numRange(30, 90),
			Subtext:         "因为 Word 崩溃过",
			SoulText:        "保存\n是一种安全感的仪式",
		},
		{
			ID:              "documents_pdf",
			Category:        models.CategoryDocuments,
			Template:        "你今年转换了 **{number}** 次 PDF",
			HasRandomNumber: true,
			NumberRange:     numRange(1000, 2500),
			Subtext:         "有 {ratio}% 的时候发现字体变了",
			SoulText:        "转 PDF\n是玄学",
		},
		// 非诉专属文档场景
		{
			ID:           "documents_dd_due_diligence",
			Category:     models.CategoryDocuments,
			Template:     "你最熟悉的文档类型\n是尽职调查报告",
			Subtext:      "你已经能闭着眼睛\n列出尽调清单的所有项目",
			SoulText:     "有些目录\n你背得比自己电话号码还熟",
			BusinessArea: models.BusinessNonLitigation,
		},
		{
			ID:              "documents_dd_contract_review",
			Category:        models.CategoryDocuments,
			Template:        "你今年审查的合同\n加起来有 **{number}** 份",
			HasRandomNumber: true,
			NumberRange:     numRange(300, 600),
			Subtext:         "每份都有\n至少3个版本",
			SoulText:        "你以为改完了\n客户说\"再看看第12条\"",
			BusinessArea:    models.BusinessNonLitigation,
		},
		{
			ID:           "documents_dd_changes",
			Category:     models.CategoryDocuments,
			Template:     "你最怕听到的一句话：\n\n\"这个条款我们再讨论一下\"",
			Subtext:      "通常意味着\n还要再开3次会",
			SoulText:     "讨论不是结束\n是新一轮修改的开始",
			BusinessArea: models.BusinessNonLitigation,
		},
		// 诉讼专属文档场景
		{
			ID:           "documents_litigation_filing",
			Category:     models.CategoryDocuments,
			Template:     "你最熟悉的操作\n是在 deadline 当天\n提交立案材料",
			Subtext:      "法院的立案庭\n比你家还熟悉",
			SoulText:     "有些窗口的办事员\n已经认识你了",
			BusinessArea: models.BusinessLitigation,
		},
		{
			ID:              "documents_litigation_evidence",
			Category:        models.CategoryDocuments,
			Template:        "你今年整理的\n证据清单有 **{number}** 份",
			HasRandomNumber: true,
			NumberRange:     numRange(50, 150),
			Subtext:         "每一份都要\n编页码、做目录",
			SoulText:        "证据组织得好\n不一定能赢\n但不组织肯定输",
			BusinessArea:    models.BusinessLitigation,
		},

		// ===== 时间错乱 =====
		{
			ID:       "time_no_weekend",
			Category: models.CategoryTimeDisorder,
			Template: "你不再区分\n工作日和周末\n\n只区分：\n**能不能回消息**",
			Subtext:  "周末只是一个概念",
			SoulText: "日历只是参考\n不是规则",
		},
		{
			ID:       "time_later",
			Category: models.CategoryTimeDisorder,
			Template: "你最常说的一句话是：\n\n\"我晚点看\"",
			Subtext:  "\"晚点\"的定义：不确定",
			SoulText: "晚点\n就是不确定",
		},
		{
			ID:              "time_holiday_work",
			Category:        models.CategoryTimeDisorder,
			Template:        "你有过\n明明在休息\n却突然开始处理工作的瞬间",
			HasRandomNumber: true,
			NumberRange:     numRange(12, 35),
			NumberSuffix:    "次",
			Subtext:         "通常是假期",
			SoulText:        "休息是一种状态\n不是一个时间段",
		},
		{
			ID:       "time_off_work",
			Category: models.CategoryTimeDisorder,
			Template: "你已经不太记得\n上一次\n完整下班是什么感觉",
			Subtext:  "完整下班的定义：\n脑子里没有待办事项",
			SoulText: "下班时间\n只是一个说法",
		},
		{
			ID:              "time_deadline",
			Category:        models.CategoryTimeDisorder,
			Template:        "你听到\"明天要\"的次数\n已经多到\n不再有情绪波动",
			HasRandomNumber: true,
			NumberRange:     numRange(80, 200),
			NumberSuffix:    "次",
			Subtext:         "平均每天 {number} 次",
			SoulText:        "明天\n永远是最忙的一天",
		},
		{
			ID:              "time_lunch",
			Category:        models.CategoryTimeDisorder,
			Template:        "你有 **{number}** 天\n是在下午两点之后才吃的午饭",
			HasRandomNumber: true,
			NumberRange:     numRange(45, 120),
			Subtext:         "忙起来会忘记吃饭",
			SoulText:        "有些时候\n午饭和晚饭合并了",
		},

		// ===== 行业语言/黑话 =====
		{
			ID:       "jargon_principle",
			Category: models.CategoryIndustryJargon,
			Template: "你已经完全听懂\n\"原则上可以\"\n的全部含义",
			Subtext:  "真实含义：实操可能不行",
			SoulText: "原则\n就是可以不遵守的规则",
		},
		{
			ID:       "jargon_room",
			Category: models.CategoryIndustryJargon,
			Template: "你知道\n哪些话\n是为了留下余地",
			Subtext:  "留余地\n就是给自己留空间",
			SoulText: "模糊不是逃避\n是专业",
		},
		{
			ID:       "jargon_ambiguity",
			Category: models.CategoryIndustryJargon,
			Template: "你学会用模糊\n对抗不确定性",
			Subtext:  "因为法律本身就很模糊",
			SoulText: "确定性\n是奢侈品",
		},
		{
			ID:              "jargon_no_repeat",
			Category:        models.CategoryIndustryJargon,
			Template:        "有些解释\n你已经不想再说第二遍",
			HasRandomNumber: true,
			NumberRange:     numRange(15, 40),
			NumberSuffix:    "种",
			Subtext:         "已经说过很多遍",
			SoulText:        "不是不耐烦\n是累了",
		},
		{
			ID:              "jargon_verify",
			Category:        models.CategoryIndustryJargon,
			Template:        "\"我需要再核实一下\"\n\n你今年说了 **{number}** 次",
			HasRandomNumber: true,
			NumberRange:     numRange(120, 300),
			Subtext:         "真实含义：我现在也不确定",
			SoulText:        "核实\n是专业缓冲词",
		},
		{
			ID:              "jargon_understand",
			Category:        models.CategoryIndustryJargon,
			Template:        "\"我理解您的感受\"\n\n你今年说了 **{number}** 次",
			HasRandomNumber: true,
			NumberRange:     numRange(80, 200),
			Subtext:         "真实含义：但规则不允许",
			SoulText:        "理解\n不代表同意",
		},

		// ===== 认知变化 =====
		{
			ID:       "cognition_no_judge",
			Category: models.CategoryCognitionChange,
			Template: "你不再轻易评价\n当事人\"懂不懂法\"",
			Subtext:  "每个人都有自己的逻辑",
			SoulText: "因为很多时候\n懂不懂\n不影响结果",
		},
		{
			ID:       "cognition_executable",
			Category: models.CategoryCognitionChange,
			Template: "你开始更在意\n**可执行性**\n而不是道理本身",
			Subtext:  "道理赢不了官司",
			SoulText: "可执行\n比正确重要",
		},
		{
			ID:       "cognition_law_limit",
			Category: models.CategoryCognitionChange,
			Template: "有些问题\n你已经知道\n法律解决不了",
			Subtext:  "但当事人还是问",
			SoulText: "但你还是会接\n因为那是工作",
		},
		{
			ID:       "cognition_wont_change",
			Category: models.CategoryCognitionChange,
			Template: "你比去年\n更清楚\n什么不会改变",
			Subtext:  "这不是悲观\n是清醒",
			SoulText: "有些事情\n永远不会变",
		},
		{
			ID:              "cognition_confidence",
			Category:        models.CategoryCognitionChange,
			Template:        "对行业前景的信心\n\n年初：**{start}%**\n年末：**{end}%**",
			HasRandomNumber: true,
			NumberRange:     numRange(35, 48),
			Subtext:         "下降的原因\n你知道",
			SoulText:        "你不是失望\n你只是更清楚\n什么不会改变",
		},
		{
			ID:              "cognition_illusion",
			Category:        models.CategoryCognitionChange,
			Template:        "你这一年最大的幻觉：\n\n\"这个案子结束我就轻松了\"",
			Subtext:         "信了 {number} 次",
			HasRandomNumber: true,
			NumberRange:     numRange(8, 20),
			SoulText:        "案子结束\n只是下一个开始",
		},
		{
			ID:       "cognition_emotion",
			Category: models.CategoryCognitionChange,
			Template: "你听到\"就改一下\"的心率反应\n\n**显著升高**",
			Subtext:  "尤其是周五下午 6 点之后",
			SoulText: "条件反射\n级别的恐惧",
		},

		// ===== 身份溢出（点睛类）=====
		{
			ID:            "identity_names",
			Category:      models.CategoryIdentityOverflow,
			Template:      "有些名字\n你已经不记得\n是客户、同事\n还是你人生的一部分",
			HasRandomName: true,
			Subtext:       "他们在你的联系人里",
			SoulText:      "工作和生活的边界\n早就模糊了",
		},
		{
			ID:       "identity_case_end",
			Category: models.CategoryIdentityOverflow,
			Template: "有些案子\n你记得很清楚\n却已经不记得\n是什么时候结束的",
			Subtext:  "好像一直没结束",
			SoulText: "结案不是结束\n遗忘才是",
		},
		{
			ID:       "identity_progress",
			Category: models.CategoryIdentityOverflow,
			Template: "有些关系\n只存在于\n工作进度里",
			Subtext:  "项目结束后\n就再也没联系过",
			SoulText: "项目结束\n关系也就结束了",
		},
		{
			ID:              "identity_dream",
			Category:        models.CategoryIdentityOverflow,
			Template:        "你做过 **{number}** 次\n关于工作的梦",
			HasRandomNumber: true,
			NumberRange:     numRange(5, 18),
			Subtext:         "通常梦到改文件",
			SoulText:        "梦里还在改合同",
		},
		{
			ID:       "identity_self",
			Category: models.CategoryIdentityOverflow,
			Template: "有时候你会突然想起\n自己好像\n还有别的身份",
			Subtext:  "但也只是想起而已",
			SoulText: "律师身份\n已经成了主角",
		},

		// ===== AI 时代冲突场景 =====
		{
			ID:       "ai_first_lawyer",
			Category: models.CategoryAIConflict,
			Template: "你这一年\n听到过无数次这句话：\n\n\"{aiName} 不是这么说的\"",
			Subtext:  "AI 成了当事人的第一位律师（2025专属）",
			SoulText: "你还没开始解释\n他已经先引用完了",
		},
		{
			ID:       "ai_more_certain",
			Category: models.CategoryAIConflict,
			Template: "当事人在引用 AI 结论时\n语气往往\n**比引用你更笃定**",
			Subtext:  "确定性来自答案格式\n不是来自事实",
			SoulText: "你给的是风险区间\n它给的是句号",
		},
		{
			ID:       "ai_explain_ai",
			Category: models.CategoryAIConflict,
			Template: "你已经习惯\n在解释法律之前\n先解释\n**AI 为什么会这么回答**",
			Subtext:  "这是 2025 新增的开场白（2025专属）",
			SoulText: "解释 AI\n成了新的专业环节",
		},
		{
			ID:       "ai_search_replaced",
			Category: models.CategoryAIConflict,
			Template: "AI 取代了百度\n但顺带\n增加了你的解释成本",
			Subtext:  "你不是多了助手\n是多了校对员",
			SoulText: "你要纠正的\n不止是答案",
		},
		{
			ID:       "ai_proofread",
			Category: models.CategoryAIConflict,
			Template: "有些咨询\n本质上已经变成了：\n\n\"请你帮我校对一下 AI 的判断\"",
			Subtext:  "AI 先写结论\n你来背后果",
			SoulText: "看起来是省时\n其实是转移",
		},
		{
			ID:       "ai_generate_evidence",
			Category: models.CategoryAIConflict,
			Template: "当事人发现\n缺少关键证据之后\n问你：\n\n\"能不能让豆包生成一张图？\"",
			Subtext:  "证据被当成素材库（2025专属）",
			SoulText: "那一刻\n你突然不知道从哪解释起",
		},
		{
			ID:       "ai_evidence_not_fact",
			Category: models.CategoryAIConflict,
			Template: "你第一次意识到\n有些人是真的以为\n**证据是可以补生成的**",
			Subtext:  "技术进步\n没有同步带来规则理解",
			SoulText: "不是不会\n是以为可以",
		},
		{
			ID:       "ai_cannot_generate_truth",
			Category: models.CategoryAIConflict,
			Template: "你不得不解释\nAI 可以生成图片\n但不能生成\n**案件发生过的事实**",
			Subtext:  "这是 2025 新型误区（2025专属）",
			SoulText: "真实\n不是算法产物",
		},
		{
			ID:       "ai_evidence_silence",
			Category: models.CategoryAIConflict,
			Template: "有些沉默\n出现在你解释\n\"证据真实性\"的那一刻",
			Subtext:  "对方第一次意识到\n生成 ≠ 发生",
			SoulText: "你看见了\n规则的边界",
		},
		{
			ID:       "ai_rule_gap",
			Category: models.CategoryAIConflict,
			Template: "那一刻你突然意识到\n技术进步\n并没有同步带来\n规则理解",
			Subtext:  "理解滞后\n比技术更难补",
			SoulText: "你在补的是\n认知差",
		},
		{
			ID:       "ai_doc_review",
			Category: models.CategoryAIConflict,
			Template: "当事人递给你一份文书\n说：\n\n\"我用豆包写的，你帮我看看？\"",
			Subtext:  "这是 2025 的新常态（2025专属）",
			SoulText: "你知道\n这不是最后一次",
		},
		{
			ID:       "ai_logic_not_valid",
			Category: models.CategoryAIConflict,
			Template: "你一眼就看出来\n这份文书\n**语法没问题，但逻辑不成立**",
			Subtext:  "像对\n不等于能用",
			SoulText: "顺畅\n不是合法",
		},
		{
			ID:       "ai_explain_usability",
			Category: models.CategoryAIConflict,
			Template: "你需要花很长时间\n才能解释清楚：\n\n\"看起来像对，不等于能用\"",
			Subtext:  "解释成本\n比重写还高",
			SoulText: "有些话\n必须重复很多遍",
		},
		{
			ID:       "ai_rewrite_cost",
			Category: models.CategoryAIConflict,
			Template: "有些文书\n修改成本\n反而高于重写",
			Subtext:  "AI 没有节省时间\n它只是提前交付错误",
			SoulText: "你在修补\n它的确定性",
		},
		{
			ID:       "ai_no_time_saved",
			Category: models.CategoryAIConflict,
			Template: "AI 没有节省你的时间\n它只是\n把错误提前交给了你",
			Subtext:  "看起来是效率\n其实是转嫁",
			SoulText: "你省下的\n只是它的时间",
		},
		{
			ID:       "ai_fixed_answer",
			Category: models.CategoryAIConflict,
			Template: "当事人相信\nAI 的“确定性”\n却无法接受\n法律的“不确定性”",
			Subtext:  "他们想要答案\n你只能给风险",
			SoulText: "你给的是区间\n它给的是结论",
		},
		{
			ID:       "ai_risk_range",
			Category: models.CategoryAIConflict,
			Template: "AI 给的是答案\n而你给的是\n风险区间",
			Subtext:  "专业的价值\n藏在不确定里",
			SoulText: "你越专业\n越难一句话",
		},
		{
			ID:       "ai_not_affirmation",
			Category: models.CategoryAIConflict,
			Template: "有些失望\n并不是因为结果\n而是因为\n你没有像 AI 那样给出肯定句",
			Subtext:  "你无法保证\n只能评估",
			SoulText: "你不敢说“能”\n因为你要负责",
		},
		{
			ID:       "ai_one_sentence_gap",
			Category: models.CategoryAIConflict,
			Template: "你发现\n越需要专业判断的地方\n越难用一句话说完",
			Subtext:  "复杂问题\n被期待成一句话",
			SoulText: "专业\n不是一句话能装下",
		},
		{
			ID:       "ai_cleanup_boundary",
			Category: models.CategoryAIConflict,
			Template: "你不是在和 AI 竞争\n你是在\n**替它收拾边界**",
			Subtext:  "这是 2025 的新角色（2025专属）",
			SoulText: "边界\n才是你要守的东西",
		},
		{
			ID:       "ai_world_collapse",
			Category: models.CategoryAIConflict,
			Template: "AI 给了当事人\n一个“看起来完整的世界”\n你负责告诉他\n哪里会塌",
			Subtext:  "你是结构工程师",
			SoulText: "看起来完整\n不代表能承受",
		},
		{
			ID:       "ai_fix_hallucination",
			Category: models.CategoryAIConflict,
			Template: "你逐渐意识到\n自己的工作\n正在从“提供信息”\n变成“校正幻觉”",
			Subtext:  "这是 2025 的隐形劳动（2025专属）",
			SoulText: "你在帮他\n回到现实",
		},
		{
			ID:       "ai_understood_misread",
			Category: models.CategoryAIConflict,
			Template: "法律没有被 AI 取代\n只是\n被更多人\n误以为已经理解",
			Subtext:  "理解的错觉\n更难纠正",
			SoulText: "你面对的\n是“自信的误解”",
		},
	}
}
