// Copyright (c) 2025-2026 Davi Ramos
// SPDX-License-Identifier: GPL-3.0-or-later

// Package offer holds the landing page aimed at psychologists and the
// social media ad previews that link to it. Content is Portuguese only.
package offer

import "net/url"

// WhatsApp contact used by the landing page call to action.
const (
	WhatsAppPhone   = "5511912950091"
	WhatsAppMessage = "Olá, Davi! Vi sua página sobre criação de Landing Pages para psicólogos e tenho interesse na oferta especial. Podemos conversar?"
)

// whatsAppSendURL is the click-to-chat endpoint.
const whatsAppSendURL = "https://api.whatsapp.com/send"

// WhatsAppURL builds a click-to-chat link that opens a conversation with
// phone prefilled with message.
func WhatsAppURL(phone, message string) string {
	q := url.Values{}
	q.Set("phone", phone)
	if message != "" {
		q.Set("text", message)
	}
	return whatsAppSendURL + "?" + q.Encode()
}

// Problem is one pain point card.
type Problem struct {
	Icon        string
	Title       string
	Description string
}

// Testimonial is a past client project with their quote.
type Testimonial struct {
	Name     string
	ImageURL string
	Quote    string
	Author   string
}

// PackageItem is one deliverable of the offer.
type PackageItem struct {
	Icon string
	Text string
}

// Pricing is the price block of the offer card.
type Pricing struct {
	Standard  string
	Condition string
	Monthly   string
	Upfront   string
	Notice    string
}

// Page is the full landing page content.
type Page struct {
	HeroTitle     string
	HeroHighlight string
	HeroLead      string
	HeroStrong    string
	HeroCTA       string

	ProblemsTitle string
	Problems      []Problem

	BridgeTitle string
	BridgeBody  []string

	ProofTitle   string
	Testimonials []Testimonial

	OfferTitle   string
	OfferLead    string
	PackageTitle string
	Package      []PackageItem
	Pricing      Pricing

	ClosingTitle string
	ClosingBody  string
	ClosingCTA   string

	WhatsAppURL string
}

// AdPost is the sponsored post mockup shown at /psi/ad.
type AdPost struct {
	Initials  string
	Author    string
	Sponsored string
	Copy      string
	ImageURL  string
	Domain    string
	Headline  string
	CTA       string
}

// Creative is the text of the image-only ad.
type Creative struct {
	Lead      string
	First     string
	Connector string
	Second    string
	Tagline   string
	Footer    string
}

// LandingPage returns the /psi page content.
func LandingPage() Page {
	return Page{
		HeroTitle:     "Psicólogo, e se cada real investido em anúncios trouxesse um",
		HeroHighlight: "paciente qualificado?",
		HeroLead:      "Muitos profissionais excelentes se frustram com o marketing digital. Eles atraem cliques, mas não pacientes. A verdade é que o problema não é o seu anúncio.",
		HeroStrong:    "É o destino para onde você o envia.",
		HeroCTA:       "Quero entender como",

		ProblemsTitle: "Isso soa familiar para você?",
		Problems: []Problem{
			{
				Icon:        "target",
				Title:       `O "Funil Furado" do Instagram`,
				Description: "Você paga para levar pessoas ao seu perfil, elas olham seus posts, se distraem com stories e... somem. Seu perfil é um ótimo cartão de visitas, mas um péssimo conversor.",
			},
			{
				Icon:        "chart",
				Title:       "A Confusão do Site Completo",
				Description: "Seu site tem 'Home', 'Sobre', 'Blog'. O visitante clica em tudo, mas não toma a ação que você mais quer: a de agendar uma consulta.",
			},
			{
				Icon:        "message-off",
				Title:       "O Desgaste do WhatsApp",
				Description: "Você recebe dezenas de mensagens, explica tudo do zero, filtra curiosos e, no fim, a conversa esfria. Seu tempo é valioso demais para isso.",
			},
		},

		BridgeTitle: "A ponte entre o clique e o paciente tem um nome: Landing Page.",
		BridgeBody: []string{
			"Imagine uma página criada com um único objetivo: receber o visitante do seu anúncio e guiá-lo, passo a passo, até o agendamento. Sem distrações. Sem links para sair. Apenas um caminho claro.",
			"É isso que eu construo.",
			"Não sou apenas um desenvolvedor. Sou um especialista em criar a ferramenta de conversão que falta na sua estratégia. E eu já fiz isso para outros psicólogos.",
		},

		ProofTitle: "Veja as pontes que construí para outros psicólogos como você:",
		Testimonials: []Testimonial{
			{
				Name:     "Projeto | Matheus Vieira",
				ImageURL: "/media/matheus.png",
				Quote:    "Tive uma ótima experiência! Desde o início foram extremamente atenciosos, tiraram todas as minhas dúvidas e acompanharam cada detalhe. O site que eles desenvolveram ficou incrível, moderno, funcional e exatamente como eu queria.",
				Author:   "Matheus Vieira, Psicólogo",
			},
			{
				Name:     "Projeto | Jerusa Claro",
				ImageURL: "/media/jerusa.png",
				Quote:    "Já tive a oportunidade de contar com os serviços mais de uma vez, e sempre fui atendida com muito profissionalismo e competência. O conhecimento vasto permite resolver qualquer problema com rapidez, garantindo um resultado de qualidade.",
				Author:   "Jerusa Claro, Psicóloga",
			},
			{
				Name:     "Projeto | Juliana Costa",
				ImageURL: "/media/juliana.png",
				Quote:    "O Davi conseguiu traduzir em design a sensibilidade que eu queria para o meu site. O resultado foi uma página que realmente me representa e tem atraído os pacientes certos para o meu consultório. Recomendo de olhos fechados!",
				Author:   "Juliana Costa, Psicóloga",
			},
		},

		OfferTitle:   "Ok, Davi, eu entendi. Do que eu preciso?",
		OfferLead:    "Você não precisa de um site complexo de 5 mil reais. Você precisa de uma máquina de conversão. E eu tornei isso acessível.",
		PackageTitle: `Pacote "Presença Digital de Alta Conversão"`,
		Package: []PackageItem{
			{Icon: "gem", Text: "Landing Page Profissional e Focada"},
			{Icon: "brain", Text: "Estrutura de Textos Persuasivos (Copywriting)"},
			{Icon: "devices", Text: "100% Responsiva (Celular, Tablet, PC)"},
			{Icon: "whatsapp", Text: "Botões de WhatsApp Integrados"},
			{Icon: "check", Text: "Formulário Inteligente (Opcional)"},
			{Icon: "target", Text: "Integração com Pixel (Facebook/Google)"},
			{Icon: "rocket", Text: "Domínio e Hospedagem por 1 ano"},
		},
		Pricing: Pricing{
			Standard:  "Investimento padrão: R$700",
			Condition: "Condição especial por tempo limitado:",
			Monthly:   "12x de R$49,90",
			Upfront:   "ou R$497 à vista",
			Notice:    "Atenção: Vagas limitadas a 2 projetos por mês com este valor.",
		},

		ClosingTitle: "Pronto(a) para transformar seus cliques em pacientes?",
		ClosingBody:  "Clique no botão abaixo e vamos conversar no WhatsApp. Sem compromisso. Vou entender seu projeto e tirar todas as suas dúvidas.",
		ClosingCTA:   "Sim, quero minha Landing Page por este valor especial!",

		WhatsAppURL: WhatsAppURL(WhatsAppPhone, WhatsAppMessage),
	}
}

// SponsoredPost returns the /psi/ad mockup content.
func SponsoredPost() AdPost {
	return AdPost{
		Initials:  "DR",
		Author:    "Davi Ramos | Ferramentas de Conversão",
		Sponsored: "Patrocinado",
		Copy: `Psicólogo, você investe em anúncios e só atrai curiosos? 🤔

O erro mais comum é enviar o tráfego para o perfil do Instagram ou para um site confuso. Ambos são péssimos em converter cliques em agendamentos.

A solução é uma Landing Page: uma página 100% focada em transformar seu visitante em paciente.

✅ Transmite profissionalismo e confiança.
✅ Guia o visitante em um caminho direto até o agendamento.
✅ Filtra os curiosos e qualifica seus contatos.

Clique em "Saiba mais" e descubra como uma ferramenta de conversão pode destravar o potencial dos seus anúncios.`,
		ImageURL: "/media/matheus.png",
		Domain:   "DAVIRDS.DEV",
		Headline: "Transforme Cliques em Pacientes",
		CTA:      "Saiba mais",
	}
}

// ImageAd returns the text of the image-only creatives.
func ImageAd() Creative {
	return Creative{
		Lead:      "Você transforma anúncios em",
		First:     "Cliques",
		Connector: "ou em",
		Second:    "Pacientes?",
		Tagline:   "Sua landing page é a ferramenta que faz essa conversão.",
		Footer:    "davirds.dev/psi",
	}
}
