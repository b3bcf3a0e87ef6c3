package snapshotting

import "strings"

// Resolução de URNs do LinkedIn para nomes legíveis. A analytics retorna
// segmentos como "urn:li:seniority:4"; a ordem de resolução é: nome já
// resolvido via lookup externo, tabela estática local, e por fim a própria
// URN bruta.

var seniorityNames = map[string]string{
	"1": "Unpaid", "2": "Training", "3": "Entry", "4": "Senior",
	"5": "Manager", "6": "Director", "7": "VP", "8": "CXO",
	"9": "Partner", "10": "Owner",
}

var companySizeNames = map[string]string{
	"A": "Self-employed (1)", "B": "2-10 employees", "C": "11-50 employees",
	"D": "51-200 employees", "E": "201-500 employees", "F": "501-1,000 employees",
	"G": "1,001-5,000 employees", "H": "5,001-10,000 employees", "I": "10,001+ employees",
}

var jobFunctionNames = map[string]string{
	"1": "Accounting", "2": "Administrative", "3": "Arts and Design",
	"4": "Business Development", "5": "Community & Social Services", "6": "Consulting",
	"7": "Education", "8": "Engineering", "9": "Entrepreneurship", "10": "Finance",
	"11": "Healthcare Services", "12": "Human Resources", "13": "Information Technology",
	"14": "Legal", "15": "Marketing", "16": "Media & Communications",
	"17": "Military & Protective Services", "18": "Operations", "19": "Product Management",
	"20": "Program & Project Management", "21": "Purchasing", "22": "Quality Assurance",
	"23": "Real Estate", "24": "Research", "25": "Sales", "26": "Customer Success & Support",
}

// Países e regiões mais comuns nas campanhas sincronizadas
var geoNames = map[string]string{
	"100994331": "Egypt", "101009982": "Algeria", "101165590": "United Kingdom",
	"101174742": "Canada", "101282230": "Germany", "101355337": "Pakistan",
	"101452733": "Philippines", "101620260": "Turkey", "102095887": "Colombia",
	"102098153": "South Korea", "102221843": "Argentina", "102257491": "Sweden",
	"102454443": "Ireland", "102713980": "India", "102890719": "France",
	"102974008": "Bangladesh", "103035651": "Mexico", "103350119": "Israel",
	"103588929": "Chile", "103644278": "United States", "103698695": "Nigeria",
	"103883259": "Belgium", "104035573": "Kenya", "104042275": "Portugal",
	"104305776": "Japan", "104514572": "Poland", "104621616": "Saudi Arabia",
	"104738515": "Netherlands", "104769905": "South Africa",
	"104878862": "Denmark", "104934075": "Russia", "104996005": "Greece",
	"105015875": "Australia", "105072130": "Singapore", "105117694": "Thailand",
	"105149562": "Czech Republic", "105327284": "Norway", "105490917": "Austria",
	"105646813": "Switzerland", "105763813": "Morocco", "105912832": "China",
	"106057199": "Brazil", "106155005": "Spain", "106693272": "Italy",
	"106834578": "Vietnam", "107534077": "New Zealand", "107862105": "Taiwan",
	"108166956": "Romania", "108301978": "Peru",
}

var industryNames = map[string]string{
	"1": "Defense & Space", "3": "Computer Hardware", "4": "Computer Software",
	"5": "Computer Networking", "6": "Internet", "7": "Semiconductors",
	"8": "Telecommunications", "10": "Law Practice", "11": "Legal Services",
	"12": "Management Consulting", "13": "Biotechnology", "14": "Medical Practice",
	"15": "Hospital & Health Care", "16": "Pharmaceuticals", "18": "Medical Devices",
	"25": "Consumer Electronics", "26": "Consumer Goods", "28": "Retail",
	"29": "Entertainment", "31": "Leisure, Travel & Tourism", "32": "Hospitality",
	"33": "Restaurants", "34": "Sports", "35": "Food & Beverages",
	"37": "Broadcast Media", "41": "Recreational Facilities", "42": "Banking",
	"43": "Insurance", "44": "Financial Services", "45": "Real Estate",
	"46": "Investment Banking", "47": "Investment Management", "48": "Accounting",
	"49": "Construction", "51": "Architecture & Planning", "52": "Civil Engineering",
	"53": "Aviation & Aerospace", "54": "Automotive", "55": "Chemicals",
	"56": "Machinery", "57": "Mining & Metals", "58": "Oil & Energy",
	"60": "Utilities", "64": "Farming", "68": "Primary/Secondary Education",
	"69": "Higher Education", "70": "Education Management", "71": "Research",
	"76": "Government Administration", "80": "Public Policy",
	"81": "Marketing and Advertising", "83": "Publishing", "85": "Information Services",
	"87": "Environmental Services", "92": "Consumer Services",
	"93": "Transportation/Trucking/Railroad", "94": "Warehousing",
	"95": "Airlines/Aviation", "96": "Maritime", "97": "Information Technology and Services",
	"98": "Market Research", "99": "Public Relations and Communications",
	"100": "Design", "101": "Nonprofit Organization Management",
	"104": "Writing and Editing", "105": "Staffing and Recruiting",
	"106": "Professional Training & Coaching", "107": "Venture Capital & Private Equity",
	"109": "Translation and Localization", "110": "Computer Games",
	"111": "Events Services", "113": "Electrical/Electronic Manufacturing",
	"114": "Online Media", "116": "Music", "117": "Logistics and Supply Chain",
	"118": "Plastics", "119": "Computer & Network Security", "120": "Wireless",
	"123": "Facilities Services", "124": "Outsourcing/Offshoring",
	"125": "Health, Wellness and Fitness", "127": "Media Production",
	"129": "Commercial Real Estate", "130": "Capital Markets",
	"133": "E-Learning", "134": "Wholesale", "135": "Import and Export",
	"136": "Mechanical or Industrial Engineering", "137": "Photography",
	"138": "Human Resources", "139": "Business Supplies and Equipment",
	"141": "Graphic Design", "145": "Renewables & Environment",
	"147": "Packaging and Containers", "148": "Industrial Automation",
	"1029": "Technology, Information and Internet",
}

var jobTitleNames = map[string]string{
	"39": "CEO", "100": "VP", "134": "Engineer", "137": "Consultant",
	"143": "Analyst", "173": "Marketing Manager", "245": "Project Manager",
	"268": "CTO", "280": "Director of Operations",
	"340": "Account Executive", "382": "Software Developer",
	"474": "HR Manager", "577": "Business Analyst",
	"662": "Sales Manager", "681": "Financial Analyst",
	"776": "Operations Manager", "879": "Data Analyst",
	"919": "Account Manager", "1006": "Product Manager",
	"1059": "Founder", "1181": "Program Manager",
	"1335": "Managing Director", "1469": "Sales Director",
	"1558": "Co-Founder", "1712": "Director of Sales",
	"2169": "Head of Marketing", "2447": "Data Scientist",
	"3813": "Growth Manager", "4687": "Head of Sales",
	"5665": "Revenue Operations", "6038": "Demand Generation Manager",
	"8114": "Customer Success Manager", "8534": "SDR Manager",
	"9533": "Head of Growth", "10724": "Partnerships Manager",
	"11726": "Chief Revenue Officer", "12491": "VP of Sales",
	"13057": "Sales Development Representative",
}

// ExtractIDFromURN extrai o id numérico final de uma URN
// (ex.: "urn:li:sponsoredCampaign:123" -> "123")
func ExtractIDFromURN(urn string) string {
	if !strings.Contains(urn, ":") {
		return urn
	}
	parts := strings.Split(urn, ":")
	return parts[len(parts)-1]
}

// resolveStaticURN consulta as tabelas estáticas locais; retorna vazio
// quando a URN é desconhecida
func resolveStaticURN(urn string) string {
	parts := strings.Split(urn, ":")
	if len(parts) < 4 {
		return ""
	}

	entityType, entityID := parts[2], parts[3]
	switch entityType {
	case "seniority":
		return seniorityNames[entityID]
	case "companySizeRange", "companySize":
		return companySizeNames[entityID]
	case "function":
		return jobFunctionNames[entityID]
	case "geo":
		return geoNames[entityID]
	case "industry":
		return industryNames[entityID]
	case "title":
		return jobTitleNames[entityID]
	}
	return ""
}

// ResolveSegmentName resolve a URN de um segmento demográfico na ordem:
// nome resolvido via lookup externo, tabela estática, URN bruta
func ResolveSegmentName(urn string, resolvedNames map[string]string) string {
	if name, ok := resolvedNames[urn]; ok && name != "" {
		return name
	}
	if name := resolveStaticURN(urn); name != "" {
		return name
	}
	return urn
}
