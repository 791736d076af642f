package periodic

// 元素名称使用西班牙语，顺序即原子序数（下标 + 1），不可调整
var table = [...]entry{
	{"Hidrógeno", "H"},
	{"Helio", "He"},
	{"Litio", "Li"},
	{"Berilio", "Be"},
	{"Boro", "B"},
	{"Carbono", "C"},
	{"Nitrógeno", "N"},
	{"Oxígeno", "O"},
	{"Flúor", "F"},
	{"Neón", "Ne"},
	{"Sodio", "Na"},
	{"Magnesio", "Mg"},
	{"Aluminio", "Al"},
	{"Silicio", "Si"},
	{"Fósforo", "P"},
	{"Azufre", "S"},
	{"Cloro", "Cl"},
	{"Argón", "Ar"},
	{"Potasio", "K"},
	{"Calcio", "Ca"},
	{"Escandio", "Sc"},
	{"Titanio", "Ti"},
	{"Vanadio", "V"},
	{"Cromo", "Cr"},
	{"Manganeso", "Mn"},
	{"Hierro", "Fe"},
	{"Cobalto", "Co"},
	{"Niquel", "Ni"},
	{"Cobre", "Cu"},
	{"Zinc", "Zn"},
	{"Galio", "Ga"},
	{"Germanio", "Ge"},
	{"Arsénico", "As"},
	{"Selenio", "Se"},
	{"Bromo", "Br"},
	{"Criptón", "Kr"},
	{"Rubidio", "Rb"},
	{"Estroncio", "Sr"},
	{"Itrio", "Y"},
	{"Zirconio", "Zr"},
	{"Niobio", "Nb"},
	{"Molibdeno", "Mo"},
	{"Tecnecio", "Tc"},
	{"Rutenio", "Ru"},
	{"Rodio", "Rh"},
	{"Paladio", "Pd"},
	{"Plata", "Ag"},
	{"Cadmio", "Cd"},
	{"Indio", "In"},
	{"Estaño", "Sn"},
	{"Antimonio", "Sb"},
	{"Telurio", "Te"},
	{"Yodo", "I"},
	{"Xenón", "Xe"},
	{"Cesio", "Cs"},
	{"Bario", "Ba"},
	{"Lantano", "La"},
	{"Cerio", "Ce"},
	{"Praseodimio", "Pr"},
	{"Neodimio", "Nd"},
	{"Prometio", "Pm"},
	{"Samario", "Sm"},
	{"Europio", "Eu"},
	{"Gadolino", "Gd"},
	{"Terbio", "Tb"},
	{"Disprosio", "Dy"},
	{"Holmio", "Ho"},
	{"Erbio", "Er"},
	{"Tulio", "Tm"},
	{"Iterbio", "Yb"},
	{"Lutecio", "Lu"},
	{"Hafnio", "Hf"},
	{"Tantalio", "Ta"},
	{"Tungsteno", "W"},
	{"Renio", "Re"},
	{"Osmio", "Os"},
	{"Iridio", "Ir"},
	{"Platino", "Pt"},
	{"Oro", "Au"},
	{"Mercurio", "Hg"},
	{"Talio", "Tl"},
	{"Plomo", "Pb"},
	{"Bismuto", "Bi"},
	{"Polonio", "Po"},
	{"Astato", "At"},
	{"Radón", "Rn"},
	{"Francio", "Fr"},
	{"Radio", "Ra"},
	{"Actinio", "Ac"},
	{"Torio", "Th"},
	{"Protactinio", "Pa"},
	{"Uranio", "U"},
	{"Neptunio", "Np"},
	{"Plutonio", "Pu"},
	{"Americio", "Am"},
	{"Curio", "Cm"},
	{"Berquelio", "Bk"},
	{"Californio", "Cf"},
	{"Einstenio", "Es"},
	{"Fermio", "Fm"},
	{"Mendelevio", "Md"},
	{"Nobelio", "No"},
	{"Laurencio", "Lr"},
	{"Rutherfordio", "Rf"},
	{"Dubnio", "Db"},
	{"Seaborgio", "Sg"},
	{"Bohrio", "Bh"},
	{"Hassio", "Hs"},
	{"Meitnerio", "Mt"},
	{"Darmstadtio", "Ds"},
	{"Roentgenio", "Rg"},
	{"Copernicio", "Cn"},
	{"Nihonio", "Nh"},
	{"Flerovio", "Fl"},
	{"Moscovio", "Mc"},
	{"Livermorio", "Lv"},
	{"Teneso", "Ts"},
	{"Oganesón", "Og"},
}
