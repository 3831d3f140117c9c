// Copyright (c) 2025 Northbound System
// Author: Nicholas Skitch
package analysis

import "strings"

// documentPlaceholder marks where the extracted document text is substituted
// into the analysis prompt. It is the only dynamic field.
const documentPlaceholder = "{document}"

// analysisPrompt is the fixed tender-document analysis instruction. The model
// is asked for nine structured sections; the response is rendered as-is and
// never parsed.
const analysisPrompt = `你是一位拥有5年以上经验的专业招标文件分析专家，请仔细阅读以下招标文件内容，并提供一个详细、准确且结构化的分析总结。

招标文件内容：
{document}

请根据上述招标文件内容，提供以下信息的详细分析和总结，每个部分都需要具体信息，不能只写标题：

1. 项目基本信息
   - 项目名称：详细全称
   - 项目编号：招标编号或参考号
   - 招标人：招标单位全称及联系方式
   - 招标代理机构：代理机构名称及联系方式
   - 项目审批机关：审批部门（如适用，文档中未提及时注明）
   - 资金来源：项目资金构成及来源（文档中未提及时注明）
   - 建设地点：详细的项目实施地点
   - 建设规模：项目总体规模、容量等具体数据
   - 计划工期：总工期和关键节点工期
   - 授标原则：标段划分和中标规则

2. 项目概况
   - 项目规模：具体数据如装机容量、单位数量
   - 建设地点：详细地址
   - 计划工期：开始和结束日期，关键里程碑
   - 质量标准：质量验收标准和要求（文档中未提及时注明）
   - 标段划分：标段数量、各标段范围

3. 招标范围
   - 具体招标内容：详细列出所有涉及的系统、工程内容
   - 主要工作量：各项工作的规模或数量（文档中未详细列明时注明）
   - 技术标准：采用的技术规范和标准（文档中未提及时注明）
   - 交付要求：成果交付形式、时间、地点
   - 调试要求：单体调试、分系统调试、整套启动调试等具体安排

4. 投标人资格要求
   - 资质条件：所需资质等级和类别
   - 财务要求：财务状况要求
   - 业绩要求：类似项目业绩数量和规模
   - 项目经理要求：资质、注册建造师、安全生产考核证等
   - 其他要求：是否接受联合体投标、证明材料要求等
   - 否决项：可能导致投标被否决的情形

5. 招标文件获取
   - 获取时间：具体日期和时间范围
   - 获取方式：平台网址、需CA证书等
   - 文件售价：费用及发票信息

6. 投标文件递交
   - 截止时间：具体日期和时间
   - 递交方式：电子平台、文件大小限制等
   - 递交地址：平台详情
   - 保证金：投标保证金金额及缴纳方式（文档中未提及时注明）
   - 文件要求：商务、技术、价格文件的大小、数量、签字盖章要求

7. 评标方法和标准
   - 评标方法：如综合评估法及各部分权重
   - 评分标准：各部分权重、细分项分值
   - 废标条件：具体情形
   - 评标委员会：组成方式

8. 合同条款要点
   - 合同形式：类型和格式
   - 支付方式：预付款、进度款、竣工结算、质量保证金等详细条件
   - 履约担保：金额、提交时间、形式
   - 违约责任：主要违约条款和处罚
   - 最终结清：缺陷责任期后的支付安排

9. 其他重要信息
   - 踏勘现场：安排（文档中未提及时注明）
   - 答疑安排：时间及方式（文档中未提及时注明）
   - 分包要求：是否允许分包（文档中未提及时注明）
   - 偏差说明：是否允许偏差（文档中未提及时注明）
   - 异议与投诉：提出时间、渠道
   - 电子招标投标：平台使用、费用承担
   - 重新招标与不再招标情形：具体条件

要求：
1. 严格按照上述结构和顺序进行组织
2. 每个部分都要有具体内容，不能只写标题
3. 信息要准确，直接来源于招标文件内容
4. 如某部分内容在招标文件中未提及，请注明“文档中未提及”
5. 使用清晰的分段和列表形式展示信息
6. 保持专业、严谨的分析风格`

// BuildPrompt substitutes the document text into the fixed analysis prompt
func BuildPrompt(documentText string) string {
	return strings.ReplaceAll(analysisPrompt, documentPlaceholder, documentText)
}
