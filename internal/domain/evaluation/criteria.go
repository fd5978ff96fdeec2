// Package evaluation scores field-coaching reports against the fixed rubric
// and derives the performance tier and the training recommendations.
package evaluation

type Category string

const (
	CategoryPlanning      Category = "PLANNING"
	CategoryPersonalTrait Category = "PERSONAL TRAIT"
	CategoryKnowledge     Category = "KNOWLEDGE"
	CategorySellingSkills Category = "SELLING SKILLS"
)

// Criterion is one rated line of the evaluation form.
type Criterion struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Category Category `json:"category"`
	MaxScore float64  `json:"maxScore"`
}

// The rubric is fixed. At full marks the categories sum to 15 (planning),
// 20 (personal traits), 10 (knowledge) and 55 (selling skills), 100 in total.
var criteria = []Criterion{
	{ID: "previous_followup", Title: "مراجعة المكالمة السابقة ومتابعة ما تم فيها", Category: CategoryPlanning, MaxScore: 5},
	{ID: "organize_call", Title: "تنظيم المكالمة: الأهداف، المواد الترويجية، تسلسل العرض", Category: CategoryPlanning, MaxScore: 5},
	{ID: "targeting", Title: "استهداف العملاء: عادات الوصف، العلامة التجارية المستهدفة", Category: CategoryPlanning, MaxScore: 5},
	{ID: "presentation", Title: "الاهتمام بالمظهر والعرض", Category: CategoryPersonalTrait, MaxScore: 5},
	{ID: "area_knowledge", Title: "معرفة توزيع العملاء والوعي بإدارة المنطقة", Category: CategoryKnowledge, MaxScore: 5},
	{ID: "opening_subject", Title: "الافتتاحية: واضحة ومباشرة للموضوع", Category: CategorySellingSkills, MaxScore: 5},
	{ID: "opening_products", Title: "الافتتاحية: متعلقة بالمنتجات", Category: CategorySellingSkills, MaxScore: 5},
	{ID: "customer_accept", Title: "قبول العميل للافتتاحية", Category: CategorySellingSkills, MaxScore: 5},
	{ID: "questioning_use", Title: "استخدام أسلوب التحقيق", Category: CategorySellingSkills, MaxScore: 5},
	{ID: "listening", Title: "مهارات الإصغاء", Category: CategorySellingSkills, MaxScore: 5},
	{ID: "product_knowledge", Title: "المعرفة بالمنتج ورسائله خلال المكالمة", Category: CategoryKnowledge, MaxScore: 5},
	{ID: "customer_need", Title: "دعم احتياجات العميل الصحيحة", Category: CategorySellingSkills, MaxScore: 5},
	{ID: "confident_voice", Title: "الثقة، نبرة الصوت، استخدام الأقلام، تدفق المكالمة ونغمتها", Category: CategoryPersonalTrait, MaxScore: 5},
	{ID: "detailing_aids", Title: "استخدام وسائل العرض بشكل صحيح", Category: CategorySellingSkills, MaxScore: 5},
	{ID: "closing_business", Title: "طلب الأعمال عند الإغلاق", Category: CategorySellingSkills, MaxScore: 5},
	{ID: "closing_feedback", Title: "الحصول على تغذية راجعة إيجابية عند الإغلاق", Category: CategorySellingSkills, MaxScore: 10},
	{ID: "resolving_objection", Title: "معالجة الاعتراضات والمخاوف", Category: CategorySellingSkills, MaxScore: 5},
	{ID: "reporting_punctuality", Title: "الالتزام بمواعيد التقارير قبل وبعد الموعد النهائي", Category: CategoryPersonalTrait, MaxScore: 5},
	{ID: "total_visits", Title: "إجمالي عدد الزيارات والمكالمات (6 زيارات، 3 صيدليات)", Category: CategoryPersonalTrait, MaxScore: 5},
}

// Criteria returns a copy of the rubric in form order.
func Criteria() []Criterion {
	out := make([]Criterion, len(criteria))
	copy(out, criteria)
	return out
}

// MaxTotal is the highest reachable total score.
func MaxTotal() float64 {
	var sum float64
	for _, c := range criteria {
		sum += c.MaxScore
	}
	return sum
}
