package feedback

// Static report text. Everything the generator emits comes from these tables;
// the generator only decides which entries appear and in what order.

var excellenceBlocks = []block{
	{
		Heading: "Avaliação Geral:",
		Lines: []string{
			"Excelente trabalho! Seu currículo demonstra um alto nível de profissionalismo",
			"e está muito bem estruturado. Você possui um perfil forte que se destaca",
			"significativamente da competição no mercado.",
		},
	},
	{
		Heading: "Pontos de Destaque:",
		Lines: []string{
			"  • Documento bem organizado e de fácil leitura",
			"  • Experiências profissionais claramente descritas",
			"  • Conjunto sólido de habilidades técnicas",
			"  • Informações de contato completas e acessíveis",
		},
	},
	{
		Heading: "Recomendações para Manter a Excelência:",
		Lines: []string{
			"  • Atualize regularmente com suas conquistas mais recentes",
			"  • Adicione métricas específicas sempre que possível (ex: \"aumentou vendas em 35%\")",
			"  • Considere incluir links para portfólio online, GitHub ou LinkedIn",
			"  • Adapte o resumo profissional para cada tipo de vaga que candidatar",
			"  • Continue investindo em certificações e cursos relevantes para sua área",
		},
	},
}

var refinementIntro = []block{
	{
		Heading: "Avaliação Geral:",
		Lines: []string{
			"Seu currículo está bem estruturado e apresenta informações relevantes de forma",
			"clara. Você possui uma base sólida que atende aos critérios principais para",
			"processos seletivos. Com algumas otimizações específicas, seu perfil pode",
			"se destacar ainda mais.",
		},
	},
	{
		Heading: "O que está funcionando bem:",
		Lines: []string{
			"  • Estrutura organizada e profissional",
			"  • Experiências relevantes demonstradas",
			"  • Habilidades técnicas identificadas",
			"  • Informações essenciais presentes",
		},
	},
	{Heading: "Oportunidades de Melhoria Identificadas:"},
}

// refinementTrigger emits its block when the dimension scores below Below.
type refinementTrigger struct {
	Dimension Dimension
	Below     float64
	Block     block
}

// refinementTriggers are evaluated independently and always in this order.
var refinementTriggers = []refinementTrigger{
	{
		Dimension: Impact,
		Below:     0.7,
		Block: block{
			Heading: "1. Impacto e Resultados Quantificáveis:",
			Lines: []string{
				"  • Problema: Faltam métricas e números que comprovem seus resultados",
				"  • Por que importa: Recrutadores valorizam dados concretos de performance",
				"  • Como melhorar:",
				"    - Adicione percentuais de crescimento (ex: \"aumentou engajamento em 45%\")",
				"    - Inclua valores financeiros quando relevante (ex: \"gerenciei orçamento de R$ 200k\")",
				"    - Cite quantidades (ex: \"liderei equipe de 8 pessoas\", \"processei 150+ tickets/mês\")",
				"    - Use números em projetos (ex: \"reduziu tempo de resposta em 30%\")",
			},
		},
	},
	{
		Dimension: Projects,
		Below:     0.7,
		Block: block{
			Heading: "2. Projetos e Realizações:",
			Lines: []string{
				"  • Problema: Poucos projetos mencionados ou não detalhados suficientemente",
				"  • Por que importa: Projetos demonstram iniciativa e aplicação prática de habilidades",
				"  • Como melhorar:",
				"    - Descreva projetos acadêmicos relevantes para a área",
				"    - Inclua projetos pessoais (GitHub, sites, aplicativos desenvolvidos)",
				"    - Mencione projetos profissionais com resultados alcançados",
				"    - Para cada projeto: tecnologias usadas + problema resolvido + resultado",
				"    - Exemplo: \"Desenvolvido sistema de vendas em Python/Django que automatizou",
				"      30% dos processos manuais, reduzindo erros em 25%\"",
			},
		},
	},
	{
		Dimension: Certs,
		Below:     0.7,
		Block: block{
			Heading: "3. Certificações e Qualificações:",
			Lines: []string{
				"  • Problema: Poucas certificações ou cursos complementares listados",
				"  • Por que importa: Certificações validam conhecimento e mostram dedicação",
				"  • Como melhorar:",
				"    - Adicione certificações técnicas relevantes (AWS, Google, Microsoft, etc.)",
				"    - Inclua cursos online relevantes (Coursera, Udemy, plataformas especializadas)",
				"    - Mencione workshops e treinamentos profissionais",
				"    - Liste idiomas com nível de proficiência",
				"    - Priorize certificações recentes (últimos 3 anos) e reconhecidas no mercado",
			},
		},
	},
	{
		Dimension: Skills,
		Below:     0.9,
		Block: block{
			Heading: "4. Habilidades Técnicas:",
			Lines: []string{
				"  • Sugestão: Expanda sua seção de habilidades",
				"  • Como melhorar:",
				"    - Liste todas as tecnologias/ferramentas que domina",
				"    - Agrupe por categoria (ex: Linguagens, Frameworks, Ferramentas, Metodologias)",
				"    - Inclua soft skills relevantes (liderança, comunicação, trabalho em equipe)",
				"    - Seja específico (ao invés de \"Office\", liste \"Excel avançado, Power BI\")",
			},
		},
	},
}

var refinementNextSteps = block{
	Heading: "Próximos Passos Recomendados:",
	Lines: []string{
		"  1. Revise cada experiência e adicione pelo menos 1-2 métricas quantificáveis",
		"  2. Dedique uma seção específica para \"Projetos Relevantes\" com 2-3 destaques",
		"  3. Busque pelo menos 1 certificação adicional relevante para sua área",
		"  4. Peça feedback de colegas ou mentores da sua área",
		"  5. Personalize o resumo profissional para cada vaga específica",
	},
}

var developmentIntro = []block{
	{
		Heading: "Avaliação Geral:",
		Lines: []string{
			"Seu currículo atende aos requisitos mínimos e contém as informações básicas",
			"necessárias. No entanto, há oportunidades significativas de melhoria que podem",
			"aumentar consideravelmente suas chances em processos seletivos.",
		},
	},
	{Heading: "Áreas Prioritárias para Desenvolvimento:"},
}

// Priority tags used in development-tier headings.
const (
	PriorityHigh      = "PRIORIDADE ALTA"
	PriorityImportant = "IMPORTANTE"
)

type developmentArea struct {
	Dimension Dimension
	Priority  string
	Block     block
}

// developmentAreas is a fixed checklist; certs and contact have no entry.
var developmentAreas = []developmentArea{
	{
		Dimension: Skills,
		Priority:  PriorityHigh,
		Block: block{
			Heading: "1. Habilidades Técnicas (PRIORIDADE ALTA):",
			Lines: []string{
				"  • Situação atual: Poucas habilidades listadas ou seção pouco desenvolvida",
				"  • Impacto: Recrutadores buscam palavras-chave específicas para filtrar candidatos",
				"  • Ação imediata:",
				"    - Crie uma seção dedicada \"Habilidades Técnicas\" ou \"Competências\"",
				"    - Liste no mínimo 10-15 habilidades relevantes para sua área",
				"    - Inclua: linguagens de programação, ferramentas, frameworks, metodologias",
				"    - Adicione soft skills importantes (trabalho em equipe, comunicação, etc.)",
				"    - Seja específico e use termos do mercado",
			},
		},
	},
	{
		Dimension: Experience,
		Priority:  PriorityHigh,
		Block: block{
			Heading: "2. Experiência Profissional (PRIORIDADE ALTA):",
			Lines: []string{
				"  • Situação atual: Experiências pouco detalhadas ou mal estruturadas",
				"  • Impacto: Impossível avaliar suas reais competências e contribuições",
				"  • Ação imediata:",
				"    - Para cada experiência, inclua: cargo, empresa, período (mês/ano)",
				"    - Liste 3-5 responsabilidades principais em bullet points",
				"    - Adicione conquistas específicas com números",
				"    - Use verbos de ação: \"Desenvolvi\", \"Gerenciei\", \"Implementei\", \"Otimizei\"",
				"    - Foque em resultados, não apenas tarefas",
			},
		},
	},
	{
		Dimension: Projects,
		Priority:  PriorityImportant,
		Block: block{
			Heading: "3. Projetos (IMPORTANTE):",
			Lines: []string{
				"  • Situação atual: Nenhum ou poucos projetos mencionados",
				"  • Impacto: Perde oportunidade de demonstrar aplicação prática",
				"  • Ação imediata:",
				"    - Adicione seção \"Projetos\" com pelo menos 2-3 exemplos",
				"    - Inclua projetos acadêmicos relevantes",
				"    - Liste projetos pessoais (mesmo que não profissionais)",
				"    - Estrutura ideal: Nome do Projeto | Tecnologias | Descrição breve | Link",
			},
		},
	},
	{
		Dimension: Impact,
		Priority:  PriorityImportant,
		Block: block{
			Heading: "4. Métricas e Resultados (IMPORTANTE):",
			Lines: []string{
				"  • Situação atual: Faltam números e dados quantificáveis",
				"  • Impacto: Dificulta comprovar suas contribuições reais",
				"  • Ação imediata:",
				"    - Revise cada experiência e adicione números específicos",
				"    - Exemplos: \"Reduziu custos em 20%\", \"Gerenciei 5 pessoas\", \"100+ clientes atendidos\"",
				"    - Use percentuais de melhoria sempre que possível",
				"    - Quantifique escopo: tamanho de equipe, orçamento, volume de trabalho",
			},
		},
	},
	{
		Dimension: DocQuality,
		Priority:  PriorityImportant,
		Block: block{
			Heading: "5. Qualidade do Documento (IMPORTANTE):",
			Lines: []string{
				"  • Situação atual: Estrutura incompleta ou desorganizada",
				"  • Impacto: Dificulta leitura e passa impressão de despreparo",
				"  • Ação imediata:",
				"    - Organize em seções claras: Contato, Resumo, Experiência, Formação, Skills",
				"    - Adicione seções opcionais relevantes: Projetos, Certificações, Idiomas",
				"    - Use formatação consistente em todo documento",
				"    - Mantenha entre 1-2 páginas (ideal: 1 página para júnior, 2 para sênior)",
				"    - Revise ortografia e gramática cuidadosamente",
			},
		},
	},
}

var developmentClosing = []block{
	{
		Heading: "Plano de Ação Sugerido (próximos 7 dias):",
		Lines: []string{
			"  Dia 1-2: Expanda seção de habilidades e adicione palavras-chave relevantes",
			"  Dia 3-4: Reescreva experiências com foco em resultados e adicione métricas",
			"  Dia 5: Crie seção de projetos com pelo menos 2 exemplos detalhados",
			"  Dia 6: Adicione certificações e cursos relevantes",
			"  Dia 7: Revise formatação, ortografia e peça feedback de alguém da área",
		},
	},
	{
		Heading: "Recursos Recomendados:",
		Lines: []string{
			"  • Busque exemplos de currículos da sua área no LinkedIn",
			"  • Use ferramentas de correção ortográfica (LanguageTool, Grammarly)",
			"  • Pesquise descrições de vagas para identificar palavras-chave importantes",
			"  • Considere consultoria de carreira ou revisão por profissional de RH",
		},
	},
}

var revisionIntro = []block{
	{
		Heading: "Avaliação Geral:",
		Lines: []string{
			"Seu currículo não atende aos critérios mínimos estabelecidos para processos",
			"seletivos competitivos. É fortemente recomendado uma revisão completa e",
			"reestruturação do documento antes de submeter candidaturas.",
		},
	},
	{
		Heading: "Situação Crítica Identificada:",
		Lines: []string{
			"O documento apresenta deficiências significativas em múltiplas áreas essenciais.",
			"Sem estas melhorias, as chances de aprovação em triagens iniciais são muito baixas.",
		},
	},
}

var criticalBlocks = []block{
	{Heading: "Problemas Críticos Encontrados:"},
	{
		Heading: "1. ESTRUTURA E ORGANIZAÇÃO (CRÍTICO):",
		Lines: []string{
			"  • Problema: Documento desorganizado, incompleto ou mal formatado",
			"  • Consequência: Recrutadores descartam currículos mal estruturados imediatamente",
			"  • Ação obrigatória:",
			"    - Reconstrua o currículo do zero usando um template profissional",
			"    - Estrutura mínima obrigatória:",
			"      1. Cabeçalho: Nome + Cargo desejado + Contato (email, telefone, cidade)",
			"      2. Resumo Profissional: 3-4 linhas sobre você",
			"      3. Experiência Profissional: Cargo, Empresa, Período, Descrição",
			"      4. Formação Acadêmica: Curso, Instituição, Período",
			"      5. Habilidades: Lista de competências técnicas e comportamentais",
			"    - Mantenha formatação consistente (fontes, tamanhos, espaçamentos)",
			"    - Use bullet points para listas",
			"    - Limite a 1-2 páginas máximo",
		},
	},
	{
		Heading: "2. CONTEÚDO INSUFICIENTE (CRÍTICO):",
		Lines: []string{
			"  • Problema: Informações essenciais faltando ou muito vagas",
			"  • Consequência: Impossível avaliar sua qualificação para qualquer vaga",
			"  • Ação obrigatória:",
			"    - Contato: Adicione email profissional, telefone com DDD, cidade/estado",
			"    - Experiências: Descreva TODAS suas experiências relevantes:",
			"      * O que você fazia? (responsabilidades principais)",
			"      * Quais resultados alcançou? (com números sempre que possível)",
			"      * Quais ferramentas/tecnologias usou?",
			"    - Habilidades: Liste no MÍNIMO 10-15 habilidades da sua área",
			"    - Formação: Curso completo, instituição, ano de conclusão/previsão",
		},
	},
	{
		Heading: "3. FALTA DE DIFERENCIAÇÃO (CRÍTICO):",
		Lines: []string{
			"  • Problema: Nenhum ou poucos elementos que destaquem seu perfil",
			"  • Consequência: Seu currículo se perde em meio a centenas de outros",
			"  • Ação obrigatória:",
			"    - Projetos: Adicione PELO MENOS 2 projetos que desenvolveu",
			"      * Pode ser acadêmico, pessoal ou profissional",
			"      * Descreva: o que fez, como fez, resultado obtido",
			"    - Certificações: Busque pelo menos 1-2 cursos/certificações online",
			"      * Coursera, Udemy, Google, Microsoft, AWS têm opções gratuitas",
			"    - Resultados: Transforme tarefas em conquistas:",
			"      * RUIM: \"Atendimento ao cliente\"",
			"      * BOM: \"Atendi 50+ clientes/dia com 95% de satisfação\"",
		},
	},
	{Heading: "PLANO DE RECONSTRUÇÃO URGENTE:"},
}

// reconstructionPlan is rendered as plain text, one fragment per week.
var reconstructionPlan = [][]string{
	{
		"Semana 1 - Estrutura Básica:",
		"  □ Dia 1: Pesquise 3-5 exemplos de currículos da sua área (LinkedIn/Google)",
		"  □ Dia 2: Escolha ou crie um template limpo e profissional",
		"  □ Dia 3: Preencha todas as seções obrigatórias com informações básicas",
		"  □ Dia 4: Revise e corrija formatação, ortografia e gramática",
	},
	{
		"Semana 2 - Conteúdo de Qualidade:",
		"  □ Dia 5-6: Reescreva cada experiência com foco em RESULTADOS e NÚMEROS",
		"  □ Dia 7: Expanda lista de habilidades para pelo menos 15 itens relevantes",
		"  □ Dia 8: Adicione seção de Projetos com 2-3 exemplos detalhados",
		"  □ Dia 9: Faça pelo menos 1 curso online e adicione como certificação",
	},
	{
		"Semana 3 - Refinamento:",
		"  □ Dia 10: Adicione resumo profissional impactante (3-4 linhas)",
		"  □ Dia 11: Revise TODA ortografia e gramática (use LanguageTool)",
		"  □ Dia 12: Peça feedback de 2-3 pessoas (amigos, professores, mentores)",
		"  □ Dia 13: Aplique correções finais",
		"  □ Dia 14: Teste com esta ferramenta novamente",
	},
}

const targetedHeading = "Principais Deficiências Identificadas:"

var targetedNextSteps = block{
	Heading: "Próximos Passos Imediatos:",
	Lines: []string{
		"  1. Revise cada área crítica listada acima",
		"  2. Foque primeiro nas deficiências mais graves",
		"  3. Busque exemplos de currículos bem avaliados na sua área",
		"  4. Implemente as mudanças sistematicamente",
		"  5. Teste novamente nesta ferramenta para validar melhorias",
	},
}

var supportResources = block{
	Heading: "Recursos de Apoio:",
	Lines: []string{
		"  • Templates: Canva, Google Docs, Microsoft Word (templates gratuitos)",
		"  • Exemplos: LinkedIn (busque currículos de profissionais da sua área)",
		"  • Cursos: Coursera, Udemy, LinkedIn Learning, Google Digital Garage",
		"  • Correção: LanguageTool, Grammarly (verificação gratuita)",
		"  • Orientação: Busque centros de carreira, professores ou mentores",
	},
}

const (
	approvedBanner   = "CURRÍCULO APROVADO"
	revisionBanner   = "CURRÍCULO PRECISA DE REVISÃO COMPLETA"
	revisionWarning  = "⚠️ IMPORTANTE: Não envie este currículo para vagas antes das correções!"
	recommendHeading = "Análise Detalhada e Recomendações:"
)
