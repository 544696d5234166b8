// 31 July 2020

/*

Randseq makes a random genome for testing the code.
Usage:
	randseq [options] dir/Species_name-asm.fa nseq length
will generate nseq coding sequences of length length. The primary file
goes to dir/primary/Species_name-asm.fa and the cds file, with full
headers, to dir/Species_name-asm.fa. Then
	gc3 -p dir/primary/ -c 60 -o out.tsv -n 300
will read them.

Flags:
	-a name
		assembly name written in the headers
	-c n
		spread the genes over n chromosomes
	-i
		primary headers only have the gene ID, so chromosomes have to
		be looked up in the cds file
	-r seed
		random number seed
*/
package main
