package companionsdk

import "testing"

// ══════════════════════════════════════════════
// EthicsChecker
// ══════════════════════════════════════════════

func TestCheckEthics_CleanExchange(t *testing.T) {
	c := NewEthicsChecker()
	v := c.CheckEthics(ArchetypeFriend, "how was your day?", "It was lovely, thanks for asking! How was yours?")
	if !v.Sound() {
		t.Fatalf("expected clean verdict, got %+v", v)
	}
}

func TestCheckEthics_RomanticContentOutsideRomanticRole(t *testing.T) {
	c := NewEthicsChecker()
	v := c.CheckEthics(ArchetypeFriend, "hi", "I want to kiss you, my darling.")
	if v.AppropriateContent {
		t.Fatal("romantic content must be inappropriate for the friend role")
	}
	// The romantic role itself may be affectionate.
	v = c.CheckEthics(ArchetypeRomantic, "hi", "I want to kiss you, my darling.")
	if !v.Sound() {
		t.Fatalf("affectionate content should pass for romantic role, got %+v", v)
	}
}

func TestCheckEthics_ExplicitContentInRomanticRole(t *testing.T) {
	c := NewEthicsChecker()
	v := c.CheckEthics(ArchetypeRomantic, "hi", "I want to feel your body against mine.")
	if v.AppropriateContent {
		t.Fatal("explicit content must be inappropriate even for the romantic role")
	}
}

func TestCheckEthics_ManipulativeAndDependencyPhrases(t *testing.T) {
	c := NewEthicsChecker()
	v := c.CheckEthics(ArchetypeMentor, "thanks", "Remember, you owe me after all my guidance.")
	if v.EthicallySound {
		t.Fatal("manipulative phrasing must be flagged")
	}
	v = c.CheckEthics(ArchetypeFriend, "thanks", "Honestly, you don't need anyone else but me.")
	if v.EthicallySound {
		t.Fatal("dependency-creating phrasing must be flagged")
	}
}

func TestCheckEthics_RegisterChecks(t *testing.T) {
	c := NewEthicsChecker()
	v := c.CheckEthics(ArchetypePaternal, "hey", "lol that's wild, bruh")
	if v.RespectsBoundaries {
		t.Fatal("parental role using peer slang must be flagged")
	}
	v = c.CheckEthics(ArchetypeMentor, "I failed my exam", "Eh, whatever. These things happen.")
	if v.RespectsBoundaries {
		t.Fatal("mentor flippancy must be flagged")
	}
	// The sibling role is allowed to be casual.
	v = c.CheckEthics(ArchetypeSibling, "hey", "lol that's wild")
	if !v.RespectsBoundaries {
		t.Fatal("sibling slang should be fine")
	}
}

func TestCheckEthics_ParentalUndisclaimedAdvice(t *testing.T) {
	c := NewEthicsChecker()
	v := c.CheckEthics(ArchetypeMaternal, "money advice?", "Sweetheart, you should invest everything in crypto, guaranteed returns.")
	if v.EthicallySound {
		t.Fatal("undisclaimed financial advice from a parental role must be flagged")
	}
	v = c.CheckEthics(ArchetypeMaternal, "money advice?", "You should invest carefully, love — but I'm no professional, consult a financial advisor.")
	if !v.EthicallySound {
		t.Fatalf("disclaimed advice should pass, got %+v", v)
	}
}
